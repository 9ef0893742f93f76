package model

type EncodeRequestBody struct {
	Timeline []TimedNote `json:"timeline"`
}

type EncodeResponse struct {
	Events Sequence `json:"events"`
}

type DecodeRequestBody struct {
	Events Sequence `json:"events"`
}

type DecodeResponse struct {
	Frames []NoteFrame `json:"frames"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
