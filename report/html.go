// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/drawlots/drawlots/utils/constants"
)

var (
	//go:embed report.html
	rawTemplate string

	reportTemplate = template.Must(template.New("report").Parse(rawTemplate))
)

type htmlView struct {
	App     string
	Label   string
	DrawnAt string
	Items   []string
	ID      string
}

// RenderHTML writes the report page of [r] to [w]. Items are escaped.
func RenderHTML(w io.Writer, r *Result) error {
	return reportTemplate.Execute(w, htmlView{
		App:     constants.AppName,
		Label:   r.Kind.Label(),
		DrawnAt: r.DrawnAt.Format(TimeLayout),
		Items:   r.Items,
		ID:      r.ID.String(),
	})
}
