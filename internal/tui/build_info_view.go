// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-port-ops/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "portctl"},
		{"Version", valueOrNA(info.BuildVersion())},
		{"Date", valueOrNA(info.BuildDate())},
		{"Commit", valueOrNA(info.BuildCommit())},
		{"User-Agent", info.UserAgent("portctl")},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-12s %s", row[0]+":", row[1]))
	}

	return renderPage("ABOUT", overlayBoxStyle.Render(strings.Join(lines, "\n")), "esc: back")
}
