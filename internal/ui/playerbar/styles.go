package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/ui/styles"
)

func titleStyle() lipgloss.Style { return styles.T().S().Title }

func metaStyle() lipgloss.Style { return styles.T().S().Muted }

func progressTimeStyle() lipgloss.Style { return styles.T().S().Muted }

func progressBarFilled() lipgloss.Style { return styles.T().S().Playing }

func progressBarEmpty() lipgloss.Style { return styles.T().S().Subtle }

func buttonStyle() lipgloss.Style { return styles.T().S().Base }

func toggleStyle() lipgloss.Style { return styles.T().S().Playing }
