package mimic

import (
	"context"
	"fmt"
	stdhtml "html"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/html"

	"github.com/mimictools/mimic/internal/fetch"
)

// userAgent identifies mimic to the servers it analyzes.
const userAgent = "mimic/1.0 (+https://github.com/mimictools/mimic)"

// maxStylesheets bounds how many external stylesheets are fetched per
// page.
const maxStylesheets = 20

// maxLayoutPatterns caps flex/grid/container lists in the export.
const maxLayoutPatterns = 20

// ExtractTokensOptions configures token extraction.
type ExtractTokensOptions struct {
	Timeout time.Duration
	// Verbose enables per-stylesheet progress output through Logf.
	Verbose bool
	// Logf receives progress lines when Verbose is set. Defaults to a
	// no-op.
	Logf func(format string, args ...any)
}

var (
	hexColorRe = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	rgbColorRe = regexp.MustCompile(`rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)`)
	hslColorRe = regexp.MustCompile(`hsla?\(\s*([\d.]+)(?:deg)?\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*(?:,\s*[\d.]+\s*)?\)`)
)

// ExtractTokens fetches a page, collects its stylesheets and distills
// them into a TokenSet. Extraction works on declared styles: it parses
// the page's CSS rather than computing styles in a browser.
func ExtractTokens(ctx context.Context, pageURL string, opts ExtractTokensOptions) (*TokenSet, error) {
	logf := opts.Logf
	if logf == nil || !opts.Verbose {
		logf = func(string, ...any) {}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL %q: scheme must be http or https", pageURL)
	}

	body, err := fetch.Fetch(ctx, pageURL, fetch.Options{
		Timeout:   opts.Timeout,
		UserAgent: userAgent,
	})
	if err != nil {
		return nil, err
	}
	markup := scanMarkup(string(body))

	sheets := collectStylesheets(ctx, base, markup, opts.Timeout, logf)
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no stylesheets found at %s", pageURL)
	}

	collector := newTokenCollector()
	for _, sheet := range sheets {
		collector.consume(sheet)
	}

	ts := collector.tokenSet()
	ts.Metadata = Metadata{
		URL:   pageURL,
		Title: markup.title,
	}
	return ts, nil
}

// pageMarkup holds what token extraction needs from an HTML page:
// inline style blocks, linked stylesheet URLs and the document title.
type pageMarkup struct {
	title  string
	styles []string
	hrefs  []string
}

// scanMarkup lexes a page for <style> blocks, stylesheet <link> tags
// and the <title>. The lexer hands <style> and <title> contents back
// as a single raw text token after the opening tag.
func scanMarkup(page string) pageMarkup {
	var pm pageMarkup
	l := html.NewLexer(parse.NewInputString(page))

	var tag, rel, href string
	for {
		tt, data := l.Next()
		switch tt {
		case html.ErrorToken:
			return pm

		case html.StartTagToken:
			tag = string(l.Text())
			rel, href = "", ""

		case html.AttributeToken:
			if tag != "link" {
				break
			}
			switch string(l.AttrKey()) {
			case "rel":
				rel = strings.ToLower(unquoteAttr(l.AttrVal()))
			case "href":
				href = unquoteAttr(l.AttrVal())
			}

		case html.StartTagCloseToken, html.StartTagVoidToken:
			if tag == "link" && strings.Contains(rel, "stylesheet") && href != "" {
				pm.hrefs = append(pm.hrefs, stdhtml.UnescapeString(href))
			}

		case html.TextToken:
			switch tag {
			case "style":
				if s := strings.TrimSpace(string(data)); s != "" {
					pm.styles = append(pm.styles, s)
				}
			case "title":
				if pm.title == "" {
					pm.title = strings.TrimSpace(stdhtml.UnescapeString(string(data)))
				}
			}
			tag = ""

		case html.EndTagToken:
			tag = ""
		}
	}
}

// unquoteAttr strips the quotes the lexer leaves around an attribute
// value.
func unquoteAttr(v []byte) string {
	s := string(v)
	if 2 <= len(s) && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// collectStylesheets gathers inline <style> blocks and linked
// stylesheets. Unreachable external sheets are skipped, not fatal.
func collectStylesheets(ctx context.Context, base *url.URL, markup pageMarkup, timeout time.Duration, logf func(string, ...any)) []string {
	sheets := markup.styles
	logf("found %d inline style blocks", len(sheets))

	fetched := 0
	for _, href := range markup.hrefs {
		if fetched >= maxStylesheets {
			break
		}

		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		sheetURL := base.ResolveReference(ref).String()

		body, err := fetch.Fetch(ctx, sheetURL, fetch.Options{
			Timeout:   timeout,
			UserAgent: userAgent,
		})
		if err != nil {
			logf("skipping stylesheet %s: %v", sheetURL, err)
			continue
		}
		logf("fetched stylesheet %s (%d bytes)", sheetURL, len(body))
		sheets = append(sheets, string(body))
		fetched++
	}

	return sheets
}

// tokenCollector accumulates raw declaration values across
// stylesheets before normalization.
type tokenCollector struct {
	colors   []string
	fonts    []string
	sizes    []string
	weights  map[string]bool
	spacing  []string
	radii    []string
	shadows  []string
	cssVars  map[string]string
	varOrder []string

	flex       []FlexPattern
	grid       []GridPattern
	containers []ContainerPattern
}

func newTokenCollector() *tokenCollector {
	return &tokenCollector{
		weights: make(map[string]bool),
		cssVars: make(map[string]string),
	}
}

// consume parses one stylesheet and records its tokens.
func (tc *tokenCollector) consume(content string) {
	p := css.NewParser(parse.NewInputString(content), false)

	var selector string
	decls := make(map[string]string)

	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		}

		switch gt {
		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selector = joinTokens(p.Values())
			decls = make(map[string]string)

		case css.DeclarationGrammar:
			prop := strings.ToLower(string(data))
			value := joinTokens(p.Values())
			decls[prop] = value
			tc.recordDeclaration(prop, value)

		case css.CustomPropertyGrammar:
			name := string(data)
			value := strings.TrimSpace(joinTokens(p.Values()))
			if _, ok := tc.cssVars[name]; !ok {
				tc.cssVars[name] = value
				tc.varOrder = append(tc.varOrder, name)
			}
			// Variables holding colors feed the palette too.
			tc.recordColors(value)

		case css.EndRulesetGrammar:
			tc.recordLayout(selector, decls)
			selector = ""
			decls = make(map[string]string)
		}
	}
}

// recordDeclaration sorts a property value into the right token list.
func (tc *tokenCollector) recordDeclaration(prop, value string) {
	switch prop {
	case "color", "background-color", "border-color", "background",
		"border", "outline-color", "fill", "stroke":
		tc.recordColors(value)
	case "font-family":
		tc.fonts = append(tc.fonts, value)
	case "font-size":
		tc.sizes = append(tc.sizes, value)
	case "font-weight":
		if v := strings.TrimSpace(value); v != "" {
			tc.weights[v] = true
		}
	case "margin", "padding", "gap",
		"margin-top", "margin-right", "margin-bottom", "margin-left",
		"padding-top", "padding-right", "padding-bottom", "padding-left":
		tc.spacing = append(tc.spacing, value)
	case "border-radius":
		if v := strings.TrimSpace(value); v != "" && v != "0" && v != "0px" {
			tc.radii = append(tc.radii, v)
		}
	case "box-shadow":
		if v := strings.TrimSpace(value); v != "" && v != "none" {
			tc.shadows = append(tc.shadows, v)
		}
	}
}

// recordColors extracts every hex and rgb()/rgba() color in value,
// normalized to lowercase #rrggbb.
func (tc *tokenCollector) recordColors(value string) {
	for _, m := range hexColorRe.FindAllString(value, -1) {
		if c, err := ParseHex(m); err == nil {
			tc.colors = append(tc.colors, c.Hex())
		}
	}
	for _, m := range rgbColorRe.FindAllStringSubmatch(value, -1) {
		var c RGB
		if _, err := fmt.Sscanf(m[1]+" "+m[2]+" "+m[3], "%d %d %d", &c.R, &c.G, &c.B); err == nil {
			tc.colors = append(tc.colors, c.Hex())
		}
	}
	for _, m := range hslColorRe.FindAllStringSubmatch(value, -1) {
		var h, s, l float64
		if _, err := fmt.Sscanf(m[1]+" "+m[2]+" "+m[3], "%f %f %f", &h, &s, &l); err == nil {
			col := colorful.Hsl(h, s/100, l/100).Clamped()
			tc.colors = append(tc.colors, col.Hex())
		}
	}
}

// recordLayout inspects a completed rule for flex/grid/container
// patterns.
func (tc *tokenCollector) recordLayout(selector string, decls map[string]string) {
	if selector == "" || len(decls) == 0 {
		return
	}
	selector = strings.TrimSpace(selector)

	switch decls["display"] {
	case "flex", "inline-flex":
		if len(tc.flex) < maxLayoutPatterns {
			tc.flex = append(tc.flex, FlexPattern{
				Selector:  selector,
				Direction: decls["flex-direction"],
				Justify:   decls["justify-content"],
				Align:     decls["align-items"],
				Gap:       decls["gap"],
			})
		}
	case "grid", "inline-grid":
		if len(tc.grid) < maxLayoutPatterns {
			tc.grid = append(tc.grid, GridPattern{
				Selector: selector,
				Columns:  decls["grid-template-columns"],
				Rows:     decls["grid-template-rows"],
				Gap:      decls["gap"],
			})
		}
	}

	// Rules constraining max-width act as page containers.
	if mw := decls["max-width"]; mw != "" && mw != "none" {
		if len(tc.containers) < maxLayoutPatterns {
			tc.containers = append(tc.containers, ContainerPattern{
				Selector: selector,
				MaxWidth: mw,
				Width:    decls["width"],
				Padding:  decls["padding"],
			})
		}
	}
}

// tokenSet normalizes the accumulated values into the export schema.
func (tc *tokenCollector) tokenSet() *TokenSet {
	weights := make([]string, 0, len(tc.weights))
	for w := range tc.weights {
		weights = append(weights, w)
	}
	sort.Strings(weights)

	shadows := tc.shadows
	if len(shadows) > maxTokenShadows {
		shadows = shadows[:maxTokenShadows]
	}

	vars := make(map[string]string, len(tc.cssVars))
	for _, name := range tc.varOrder {
		vars[name] = tc.cssVars[name]
	}

	return &TokenSet{
		Tokens: Tokens{
			Colors: cleanColors(tc.colors),
			Typography: Typography{
				Fonts:   cleanFonts(tc.fonts),
				Sizes:   organizeSizes(tc.sizes),
				Weights: weights,
			},
			Spacing:      organizeSpacing(tc.spacing),
			BorderRadius: organizeSizes(tc.radii),
			Shadows:      shadows,
			CSSVariables: vars,
		},
		Layout: Layout{
			Flex:       tc.flex,
			Grid:       tc.grid,
			Containers: tc.containers,
		},
	}
}

// joinTokens concatenates parser value tokens back into a string.
// The parser drops whitespace between function arguments, so a space
// is restored after each comma that is not already followed by one.
func joinTokens(values []css.Token) string {
	var b strings.Builder
	for i, v := range values {
		b.Write(v.Data)
		if v.TokenType == css.CommaToken && i+1 < len(values) && values[i+1].TokenType != css.WhitespaceToken {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}
