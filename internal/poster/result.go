package poster

// Result is the outcome of rendering one source image.
type Result struct {
	Label   string `json:"label"`
	Index   int    `json:"index"`
	Source  string `json:"source"`
	Output  string `json:"output,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
