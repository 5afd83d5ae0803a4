package renderer

import (
	"html/template"

	"github.com/nodirbekm/koreancosmetics/app/utils/format"
	"github.com/unrolled/render"
)

// New builds the shared renderer: JSON for the API, HTML with the admin
// layout for the console.
func New() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"uzs": format.FormatUZS,
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"mul": func(price int64, qty int) int64 { return price * int64(qty) },
			},
		},
	})
}
