package template

// ReferenceTemplate is the markdown reference rendered by addinctl doc.
const ReferenceTemplate = `# Add-in reference
{{range .components}}
## {{.Name}}

Extension name: ` + "`{{.Extension}}`" + `
{{if .Properties}}
### Properties

| # | Name | Kind | Access |
|---|------|------|--------|
{{range $i, $p := .Properties}}| {{$i}} | {{names $p.Name $p.Alias}} | {{$p.Kind}} | {{access $p}} |
{{end}}{{end}}{{if .Methods}}
### Methods

| # | Name | Parameters | Returns |
|---|------|------------|---------|
{{range $i, $m := .Methods}}| {{$i}} | {{names $m.Name $m.Alias}} | {{params $m.Params}} | {{if $m.HasReturn}}yes{{else}}no{{end}} |
{{end}}{{end}}{{end}}`
