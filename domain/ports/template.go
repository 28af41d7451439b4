package ports

// TemplateEngine renders text templates.
type TemplateEngine interface {
	// Render executes raw with data as the root value.
	Render(raw []byte, data any) ([]byte, error)
}
