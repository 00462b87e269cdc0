package pipeline

import "github.com/matzehuels/ganttcal/pkg/render/styles"

func stylesColors(background string) styles.Colors {
	return styles.Colors{Background: background}
}
