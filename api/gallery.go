package api

// Group is the JSON shape of a group as returned to clients.
type Group struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ImageMeta describes an image without its payload. Content is fetched
// separately through the download endpoint.
type ImageMeta struct {
	ID          int64  `json:"id"`
	GroupID     int64  `json:"group_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	CreatedAt   string `json:"created_at"`
}

type GroupProto struct {
	Name string `json:"name" binding:"required"`
}

type RenameProto struct {
	Name string `json:"name" binding:"required"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
