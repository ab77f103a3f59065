package dto

type AnalyzeRequest struct {
	Text string `json:"text" form:"text"`
}
