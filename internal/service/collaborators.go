package service

import "context"

// 外部协作方的契约。编排层只消费这些接口并把结果原样透传，
// 协作方内部没有本服务需要管理的状态。

// VideoMetadataFetcher 根据视频地址获取标题与时长（秒）
type VideoMetadataFetcher interface {
	Fetch(ctx context.Context, url string) (title string, durationSeconds int, err error)
}

// SentimentAnalyzer 对文本做情感分析，score 取值 [0,1]
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (label string, score float64, err error)
}

// Summarizer 生成文本摘要
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Transcriber 把音频文件转成文字；无法识别时返回 TranscriptNotUnderstood
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// TranscriptNotUnderstood 音频无法识别时返回的哨兵文本
const TranscriptNotUnderstood = "Sorry, the audio could not be understood."
