package mimic

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ComponentOptions configures boilerplate generation.
type ComponentOptions struct {
	// Type selects the component template: search, infinite-scroll,
	// modal or form.
	Type string
	// Name is the kebab-case component name, e.g. "topic-search".
	Name string
	// Korean keeps the localized strings and adds the IME
	// composition guard script.
	Korean bool
	// GoHandler also renders a matching HTTP handler.
	GoHandler bool
}

// ComponentResult holds the rendered artifacts.
type ComponentResult struct {
	HTMLFilename string
	HTMLContent  string
	GoFilename   string
	GoContent    string
	HandlerName  string
	Endpoint     string
}

// componentSpec pairs the markup and handler templates with their
// default parameters. Templates use {param} placeholders so the
// emitted Go-template actions pass through untouched.
type componentSpec struct {
	html      string
	goHandler string
	params    map[string]string
	// english overrides the localized strings when Korean mode is off.
	english map[string]string
}

// ComponentTypes lists the supported component types in display order.
func ComponentTypes() []string {
	types := make([]string, 0, len(components))
	for t := range components {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// GenerateComponent renders the markup (and optionally the handler)
// for one component.
func GenerateComponent(opts ComponentOptions) (*ComponentResult, error) {
	spec, ok := components[opts.Type]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q (available: %s)",
			opts.Type, strings.Join(ComponentTypes(), ", "))
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("component name is required")
	}

	params := make(map[string]string, len(spec.params)+3)
	for k, v := range spec.params {
		params[k] = v
	}
	if !opts.Korean {
		for k, v := range spec.english {
			params[k] = v
		}
	}

	params["timestamp"] = time.Now().Format("2006-01-02 15:04:05")

	// Scope the endpoint to this component's name.
	if ep, ok := params["api_endpoint"]; ok {
		params["api_endpoint"] = strings.Replace(ep, "/api/", "/api/"+opts.Name+"/", 1)
	}

	handlerName := HandlerName(opts.Name)
	params["HandlerName"] = handlerName

	if opts.Korean {
		if inputID, ok := params["input_id"]; ok {
			params["ime_script"] = expandParams(imeScript, map[string]string{"input_id": inputID})
		} else {
			params["ime_script"] = ""
		}
	} else {
		params["ime_script"] = ""
	}

	result := &ComponentResult{
		HTMLFilename: opts.Name + ".html",
		HTMLContent:  expandParams(spec.html, params),
		HandlerName:  handlerName,
		Endpoint:     params["api_endpoint"],
	}

	if opts.GoHandler && spec.goHandler != "" {
		result.GoFilename = strings.ReplaceAll(opts.Name, "-", "_") + "_handler.go"
		result.GoContent = expandParams(spec.goHandler, params)
	}

	return result, nil
}

// WriteFiles writes the rendered artifacts into dir, creating it if
// needed. It returns the written paths.
func (r *ComponentResult) WriteFiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	htmlPath := filepath.Join(dir, r.HTMLFilename)
	if err := os.WriteFile(htmlPath, []byte(r.HTMLContent), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	written := []string{htmlPath}

	if r.GoContent != "" {
		goPath := filepath.Join(dir, r.GoFilename)
		if err := os.WriteFile(goPath, []byte(r.GoContent), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", goPath, err)
		}
		written = append(written, goPath)
	}
	return written, nil
}

// Instructions returns the integration steps for the generated
// component.
func (r *ComponentResult) Instructions(name, componentType string) string {
	var b strings.Builder
	b.WriteString("Integration Instructions\n")
	fmt.Fprintf(&b, "1. Add the component to your template:\n")
	fmt.Fprintf(&b, "   {{template %q .}}\n", name)
	fmt.Fprintf(&b, "2. Register the handler on your router:\n")
	fmt.Fprintf(&b, "   mux.Get(%q, handlers.%s)\n", r.Endpoint, r.HandlerName)
	fmt.Fprintf(&b, "3. Test the component visually:\n")
	fmt.Fprintf(&b, "   mimic testpage %s --output test-%s.html\n", componentType, name)
	return b.String()
}

// HandlerName converts a kebab-case component name to a CamelCase Go
// identifier: "topic-search" becomes "TopicSearch".
func HandlerName(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "-") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

// expandParams replaces {key} placeholders with their values.
func expandParams(tmpl string, params map[string]string) string {
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// imeScript guards against premature requests while a Hangul syllable
// is still being composed.
const imeScript = `
<script>
// Korean IME (Input Method Editor) handling
// Prevents premature AJAX requests during Hangul composition
(function() {
    const input = document.getElementById('{input_id}');
    if (!input) return;

    let isComposing = false;

    input.addEventListener('compositionstart', () => {
        isComposing = true;
    });

    input.addEventListener('compositionend', () => {
        isComposing = false;
        // Trigger HTMX after composition completes
        htmx.trigger(input, 'keyup');
    });

    // Prevent triggering during composition
    input.addEventListener('keyup', (e) => {
        if (isComposing) {
            e.stopImmediatePropagation();
        }
    });
})();
</script>
`

var components = map[string]componentSpec{
	"search": {
		html: `<!-- Live Search Component -->
<!-- Generated: {timestamp} -->
<form class="search-form korean-text"
      role="search"
      hx-get="{api_endpoint}"
      hx-trigger="keyup changed delay:{debounce}ms, search"
      hx-target="#{target_id}"
      hx-indicator="#{indicator_id}">

    <label for="{input_id}" class="sr-only">{label_text}</label>
    <input type="search"
           id="{input_id}"
           name="q"
           class="search-input"
           placeholder="{placeholder_text}"
           autocomplete="off"
           aria-label="{aria_label}">

    <button type="submit" class="search-btn" aria-label="{button_label}">
        &#128269;
    </button>
</form>

<!-- Search Results Container -->
<div id="{target_id}" class="search-results">
    <!-- Results will be loaded here -->
</div>

<!-- Loading Indicator -->
<div id="{indicator_id}" class="htmx-indicator korean-text">
    {loading_text}
</div>

{ime_script}
`,
		goHandler: `package handlers

import (
	"net/http"
)

// {HandlerName} handles live search requests
// Endpoint: GET {api_endpoint}
func (h *Handler) {HandlerName}(w http.ResponseWriter, r *http.Request) {
	// Extract search query
	query := r.URL.Query().Get("q")
	if query == "" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<p class='text-muted korean-text'>{empty_message}</p>"))
		return
	}

	// Perform search (implement your search logic)
	results, err := h.searchService.Search(r.Context(), query)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<p class='text-muted korean-text'>{error_message}</p>"))
		return
	}

	// Check if this is a partial-update request
	if r.Header.Get("HX-Request") != "true" {
		// Handle non-HTMX request (return full page)
		h.renderFullSearchPage(w, r, query, results)
		return
	}

	// Render search results partial
	err = h.tmpl.ExecuteTemplate(w, "search-results", map[string]interface{}{
		"Query":   query,
		"Results": results,
		"Total":   len(results),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
`,
		params: map[string]string{
			"api_endpoint":     "/api/search",
			"target_id":        "search-results",
			"indicator_id":     "search-loading",
			"input_id":         "search-input",
			"debounce":         "500", // Higher for Korean IME
			"label_text":       "콘텐츠 검색",
			"placeholder_text": "검색어를 입력하세요...",
			"aria_label":       "검색어 입력",
			"button_label":     "검색",
			"loading_text":     "검색 중...",
			"empty_message":    "검색어를 입력하세요",
			"error_message":    "검색 중 오류가 발생했습니다",
		},
		english: map[string]string{
			"label_text":       "Search content",
			"placeholder_text": "Type to search...",
			"aria_label":       "Search input",
			"button_label":     "Search",
			"loading_text":     "Searching...",
			"empty_message":    "Enter a search term",
			"error_message":    "An error occurred while searching",
		},
	},

	"infinite-scroll": {
		html: `<!-- Infinite Scroll Component -->
<!-- Generated: {timestamp} -->
<div id="{container_id}" class="{container_class}">
    {{range .{ContentVar}}}
        {{template "{item_template}" .}}
    {{end}}
</div>

<!-- Scroll Trigger (loads next page when visible) -->
<div hx-get="{api_endpoint}?page={{.NextPage}}"
     hx-trigger="revealed"
     hx-swap="afterend"
     hx-target="#{container_id}"
     hx-indicator="#{indicator_id}">
</div>

<!-- Loading Indicator -->
<div id="{indicator_id}" class="htmx-indicator korean-text" style="text-align: center; padding: var(--space-4);">
    {loading_text}
</div>

<!-- End of Content Message -->
{{if not .HasMore}}
<div class="text-center text-muted korean-text" style="padding: var(--space-6);">
    {end_message}
</div>
{{end}}
`,
		goHandler: `package handlers

import (
	"net/http"
	"strconv"
)

// {HandlerName} handles infinite scroll pagination
// Endpoint: GET {api_endpoint}
func (h *Handler) {HandlerName}(w http.ResponseWriter, r *http.Request) {
	// Parse page number
	pageStr := r.URL.Query().Get("page")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	// Load content with pagination (implement your logic)
	content, hasMore, err := h.contentService.LoadPage(r.Context(), page, {PageSize})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<p class='text-muted korean-text'>{error_message}</p>"))
		return
	}

	// Check if this is a partial-update request
	if r.Header.Get("HX-Request") != "true" {
		// Handle non-HTMX request (return full page)
		h.renderFullContentPage(w, r, content, page, hasMore)
		return
	}

	// Send trigger if no more content
	if !hasMore {
		w.Header().Set("HX-Trigger", "noMoreContent")
	}

	// Render content items partial
	err = h.tmpl.ExecuteTemplate(w, "{item_template}", map[string]interface{}{
		"{ContentVar}": content,
		"NextPage":     page + 1,
		"HasMore":      hasMore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
`,
		params: map[string]string{
			"container_id":    "content-list",
			"container_class": "content-previews",
			"ContentVar":      "Contents",
			"item_template":   "content-preview-regular",
			"api_endpoint":    "/api/content",
			"indicator_id":    "scroll-loading",
			"loading_text":    "로딩 중...",
			"end_message":     "모든 콘텐츠를 불러왔습니다",
			"error_message":   "콘텐츠를 불러오는 중 오류가 발생했습니다",
			"PageSize":        "20",
		},
		english: map[string]string{
			"loading_text":  "Loading...",
			"end_message":   "You have reached the end",
			"error_message": "An error occurred while loading content",
		},
	},

	"modal": {
		html: `<!-- Modal Component -->
<!-- Generated: {timestamp} -->

<!-- Modal Trigger -->
<a href="{content_url}"
   hx-get="{api_endpoint}"
   hx-target="#{modal_id}"
   hx-swap="innerHTML"
   class="{trigger_class}">
    {trigger_text}
</a>

<!-- Modal Container -->
<div id="{modal_id}" class="modal" style="display: none;">
    <!-- Modal content loaded here -->
</div>

<!-- Modal Template -->
<template id="modal-template">
    <div class="modal-backdrop" onclick="this.parentElement.style.display='none'"></div>
    <div class="modal-dialog" role="dialog" aria-modal="true">
        <div class="modal-header">
            <h2 class="modal-title korean-text">{{.Title}}</h2>
            <button class="modal-close"
                    onclick="document.getElementById('{modal_id}').style.display='none'"
                    aria-label="{close_label}">
                &#10005;
            </button>
        </div>
        <div class="modal-body korean-text">
            {{.Content}}
        </div>
        <div class="modal-footer">
            <button class="btn-primary"
                    onclick="document.getElementById('{modal_id}').style.display='none'">
                {confirm_text}
            </button>
        </div>
    </div>
</template>

<style>
.modal {
    position: fixed;
    top: 0;
    left: 0;
    width: 100%;
    height: 100%;
    z-index: 1000;
    display: flex;
    align-items: center;
    justify-content: center;
}

.modal-backdrop {
    position: absolute;
    top: 0;
    left: 0;
    width: 100%;
    height: 100%;
    background: rgba(0, 0, 0, 0.5);
    backdrop-filter: blur(4px);
}

.modal-dialog {
    position: relative;
    background: var(--color-bg);
    border-radius: var(--radius-lg);
    box-shadow: var(--shadow-xl);
    max-width: 600px;
    width: 90%;
    max-height: 80vh;
    overflow-y: auto;
}

.modal-header {
    display: flex;
    align-items: center;
    justify-content: space-between;
    padding: var(--space-6);
    border-bottom: 1px solid var(--border);
}

.modal-body {
    padding: var(--space-6);
}

.modal-footer {
    padding: var(--space-6);
    border-top: 1px solid var(--border);
    display: flex;
    justify-content: flex-end;
    gap: var(--space-3);
}

.modal-close {
    background: none;
    border: none;
    font-size: var(--font-xl);
    cursor: pointer;
    color: var(--foreground-muted);
}
</style>

<script>
// Show modal when content loaded
document.body.addEventListener('htmx:afterSwap', function(evt) {
    if (evt.detail.target.id === '{modal_id}') {
        evt.detail.target.style.display = 'flex';
    }
});

// Close on ESC key
document.addEventListener('keydown', function(evt) {
    if (evt.key === 'Escape') {
        document.getElementById('{modal_id}').style.display = 'none';
    }
});
</script>
`,
		goHandler: `package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// {HandlerName} loads content for a modal dialog
// Endpoint: GET {api_endpoint}
func (h *Handler) {HandlerName}(w http.ResponseWriter, r *http.Request) {
	// Extract content ID from URL
	contentID := chi.URLParam(r, "id")
	if contentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("<p class='text-muted korean-text'>{error_message}</p>"))
		return
	}

	// Load content (implement your logic)
	content, err := h.contentService.GetByID(r.Context(), contentID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<p class='text-muted korean-text'>{not_found_message}</p>"))
		return
	}

	// Render modal content
	err = h.tmpl.ExecuteTemplate(w, "modal-content", map[string]interface{}{
		"Title":   content.Title,
		"Content": content.BodyHTML,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
`,
		params: map[string]string{
			"modal_id":          "content-modal",
			"api_endpoint":      "/api/content/{id}/modal",
			"content_url":       "/content/{id}",
			"trigger_class":     "content-link",
			"trigger_text":      "{{.Title}}",
			"close_label":       "닫기",
			"confirm_text":      "확인",
			"error_message":     "콘텐츠를 불러올 수 없습니다",
			"not_found_message": "콘텐츠를 찾을 수 없습니다",
		},
		english: map[string]string{
			"close_label":       "Close",
			"confirm_text":      "OK",
			"error_message":     "Could not load content",
			"not_found_message": "Content not found",
		},
	},

	"form": {
		html: `<!-- Server-Validated Form Component -->
<!-- Generated: {timestamp} -->
<form hx-post="{api_endpoint}"
      hx-target="#{form_id}"
      hx-swap="outerHTML"
      hx-indicator="#{indicator_id}"
      id="{form_id}"
      class="korean-text">

    <!-- Form Fields -->
    <div class="form-group">
        <label for="{field_id}">{field_label}</label>
        <input type="text"
               id="{field_id}"
               name="{field_name}"
               class="form-input"
               required
               aria-describedby="{field_id}-error">
        <div id="{field_id}-error" class="form-error"></div>
    </div>

    <!-- Submit Button -->
    <div class="form-actions">
        <button type="submit" class="btn-primary">
            {submit_text}
        </button>
        <button type="reset" class="btn-secondary">
            {reset_text}
        </button>
    </div>

    <!-- Loading Indicator -->
    <div id="{indicator_id}" class="htmx-indicator korean-text">
        {loading_text}
    </div>
</form>

<style>
.form-group {
    margin-bottom: var(--space-4);
}

.form-group label {
    display: block;
    margin-bottom: var(--space-2);
    font-weight: var(--font-medium);
}

.form-input {
    width: 100%;
    padding: var(--space-3);
    border: 1px solid var(--border);
    border-radius: var(--radius-md);
    font-size: var(--font-base);
}

.form-input:focus {
    outline: none;
    border-color: var(--color-primary);
    box-shadow: 0 0 0 3px rgba(59, 130, 246, 0.1);
}

.form-error {
    color: var(--color-error);
    font-size: var(--font-sm);
    margin-top: var(--space-1);
    display: none;
}

.form-error:not(:empty) {
    display: block;
}

.form-actions {
    display: flex;
    gap: var(--space-3);
    margin-top: var(--space-6);
}
</style>
`,
		goHandler: `package handlers

import (
	"net/http"
)

type FormData struct {
	{FieldName} string ` + "`json:\"{field_name}\"`" + `
}

type ValidationError struct {
	Field   string ` + "`json:\"field\"`" + `
	Message string ` + "`json:\"message\"`" + `
}

// {HandlerName} handles form submission with validation
// Endpoint: POST {api_endpoint}
func (h *Handler) {HandlerName}(w http.ResponseWriter, r *http.Request) {
	// Parse form data
	err := r.ParseForm()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	formData := FormData{
		{FieldName}: r.FormValue("{field_name}"),
	}

	// Validate form data
	if errors := h.validateForm(formData); len(errors) > 0 {
		// Return form with validation errors
		h.renderFormWithErrors(w, formData, errors)
		return
	}

	// Process form data (implement your logic)
	err = h.formService.Submit(r.Context(), formData)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<p class='form-error korean-text'>{error_message}</p>"))
		return
	}

	// Return success message
	w.Header().Set("HX-Trigger", "formSubmitted")
	w.Write([]byte("<p class='text-success korean-text'>{success_message}</p>"))
}

func (h *Handler) validateForm(data FormData) []ValidationError {
	errors := []ValidationError{}

	if data.{FieldName} == "" {
		errors = append(errors, ValidationError{
			Field:   "{field_name}",
			Message: "{required_message}",
		})
	}

	return errors
}
`,
		params: map[string]string{
			"form_id":          "data-form",
			"api_endpoint":     "/api/form/submit",
			"field_id":         "title",
			"field_name":       "title",
			"FieldName":        "Title",
			"field_label":      "제목",
			"submit_text":      "저장",
			"reset_text":       "초기화",
			"loading_text":     "저장 중...",
			"indicator_id":     "form-loading",
			"error_message":    "저장 중 오류가 발생했습니다",
			"success_message":  "저장되었습니다",
			"required_message": "필수 입력 항목입니다",
		},
		english: map[string]string{
			"field_label":      "Title",
			"submit_text":      "Save",
			"reset_text":       "Reset",
			"loading_text":     "Saving...",
			"error_message":    "An error occurred while saving",
			"success_message":  "Saved",
			"required_message": "This field is required",
		},
	},
}
