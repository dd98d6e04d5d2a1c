package config

import "time"

const (
	// Handler timeout for one update, thinking delay included
	RequestTimeout = 30 * time.Second

	// Rate limit burst per chat
	RateLimitBurst = 5

	// Comments and ideas shown per listing
	ListingLimit = 20

	// Export file name prefix, followed by the date
	ExportFilePrefix = "elliot-dev-lab-"
)

// Project is one entry of the Elliot project network.
type Project struct {
	Name        string
	URL         string
	Description string
}

// Projects is the Elliot project network.
var Projects = []Project{
	{
		Name:        "Elliot IA Project",
		URL:         "https://jonathasfelipe.github.io/Eliiot-IA-project",
		Description: "Projeto principal da IA Elliot",
	},
	{
		Name:        "Site Elliot",
		URL:         "https://jonathasfelipe.github.io/Elliot/index.html",
		Description: "Site oficial do projeto Elliot",
	},
}
