package handler

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardData feeds the dashboard page template.
type DashboardData struct {
	Title      string
	ImagePath  string
	MapCenter  MapCenterCoords
	MapZoom    int
	SourceName string
	SourceURL  string
}

// MapCenterCoords is the fixed basemap center.
type MapCenterCoords struct {
	Lat float64
	Lon float64
}

// DashboardHandler renders the single-page dashboard.
type DashboardHandler struct {
	templates *template.Template
	data      DashboardData
}

// NewDashboardHandler parses the embedded page templates.
func NewDashboardHandler(cfg *config.Config) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		templates: tmpl,
		data: DashboardData{
			Title:     "South Africa's Seabirds Dashboard",
			ImagePath: "/images/africanpenguins_chadwick.jpg",
			MapCenter: MapCenterCoords{
				Lat: cfg.Map.CenterLat,
				Lon: cfg.Map.CenterLon,
			},
			MapZoom:    cfg.Map.Zoom,
			SourceName: cfg.Data.SourceName,
			SourceURL:  cfg.Data.SourceURL,
		},
	}, nil
}

// Render serves the dashboard page. All dynamic content is fetched by the
// page from the JSON API on every control change.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "dashboard.html", h.data)
}
