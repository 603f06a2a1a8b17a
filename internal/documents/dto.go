package documents

// ExtractResponse is returned by the text extraction endpoint. Score is
// always an empty list.
type ExtractResponse struct {
	Text  string `json:"text"`
	Score []int  `json:"score"`
}

func toExtractResponse(doc Document) ExtractResponse {
	return ExtractResponse{Text: doc.Text, Score: []int{}}
}
