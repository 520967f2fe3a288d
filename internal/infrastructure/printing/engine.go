package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TemplateEngine renders the printable HTML documents: invoices,
// payment receipts and contract agreements. It uses Go's html/template
// package with custom functions for formatting, so business data is
// escaped by default.
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine creates the engine with the built-in documents parsed
func NewTemplateEngine() (*TemplateEngine, error) {
	root := template.New("documents").Funcs(template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
		"upper":          strings.ToUpper,
		"default":        defaultString,
	})

	for name, text := range defaultTemplates {
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}

	return &TemplateEngine{templates: root}, nil
}

// Render renders the named document with the provided data
func (e *TemplateEngine) Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// formatMoney renders an amount as "GHS 1,234.50"
func formatMoney(currency string, amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	whole := parts[0]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s.%s", currency, sign, grouped.String(), parts[1])
}

// formatDate accepts both time.Time and *time.Time so templates can
// print optional timestamps without a deref helper.
func formatDate(v interface{}) string {
	t := asTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

func formatDateTime(v interface{}) string {
	t := asTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006 15:04")
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}

func defaultString(fallback, value string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
