package dto

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type UndoResponse struct {
	Undone  bool   `json:"undone"`
	Message string `json:"message"`
}
