package model

// QuizQuestion 测验题目，题库是静态输入数据，不落库
// swagger:model QuizQuestion
type QuizQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"correct"` // 正确选项下标
}

// QuizBank 一个视频学习空间使用的题库
type QuizBank struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizResult 一次测验的最终成绩
// swagger:model QuizResult
type QuizResult struct {
	CorrectCount int `json:"correctCount"`
	Total        int `json:"total"`
}
