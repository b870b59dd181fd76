package api

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

const indexHTML = `<!doctype html>
<title>Phishing check (URL only)</title>
<h3>Paste URL and click Check</h3>
<form action="/predict" method="post">
  <input name="url" size="80" placeholder="http://example.com/path"><br><br>
  <input type="submit" value="Check">
</form>
<pre id="result">{{ .Result }}</pre>
`

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// renderIndex writes the landing page, optionally with a result JSON blob in
// the result area.
func (s *Server) renderIndex(w http.ResponseWriter, result string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, struct{ Result string }{Result: result}); err != nil {
		s.logger.Error("failed to render index page", zap.Error(err))
	}
}
