package reporting

import "html/template"

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

// reportHTML is the complete document shell. All chart SVGs are inlined, so
// the output renders without network access.
const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; }
body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; background: #f5f5f5; color: #333; }
.header { background: linear-gradient(135deg, #1e88e5 0%, #1565c0 100%); color: white; padding: 24px 32px; }
.header h1 { margin: 0 0 8px 0; font-size: 1.8em; font-weight: 600; }
.header p { margin: 0; opacity: 0.9; font-size: 0.95em; }
.container { display: flex; max-width: 1600px; margin: 0 auto; }
.nav { width: 220px; flex-shrink: 0; background: white; padding: 20px; border-right: 1px solid #ddd; position: sticky; top: 0; height: 100vh; overflow-y: auto; }
.nav h3 { margin: 0 0 12px 0; font-size: 0.85em; color: #666; text-transform: uppercase; }
.nav ul { list-style: none; padding: 0; margin: 0; }
.nav li { margin: 4px 0; }
.nav a { color: #1565c0; text-decoration: none; font-size: 0.9em; display: block; padding: 6px 10px; border-radius: 4px; }
.nav a:hover { background: #e3f2fd; }
.content { flex: 1; padding: 24px 32px; min-width: 0; }
.report-section { background: white; margin-bottom: 24px; padding: 24px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.report-section h2 { margin: 0 0 20px 0; font-size: 1.2em; color: #1565c0; border-bottom: 2px solid #e3f2fd; padding-bottom: 10px; }
.plot-container { width: 100%; overflow-x: auto; }
table { border-collapse: collapse; width: 100%; font-size: 0.85em; }
th, td { padding: 6px 10px; border: 1px solid #ddd; text-align: right; white-space: nowrap; }
th { background: #e3f2fd; text-align: center; }
td:first-child { text-align: left; font-weight: 600; }
.outliers h2 { color: #e65100; border-bottom-color: #ffe0b2; }
.warnings h2 { color: #c62828; border-bottom-color: #ffcdd2; }
.footer { text-align: center; padding: 20px; color: #666; font-size: 0.85em; }
</style>
</head>
<body>
<div class="header">
<h1>{{.Title}}</h1>
<p>Aggregated fastplong QC across {{.SampleCount}} samples &middot; Generated {{.GeneratedAt}}</p>
</div>
<div class="container">
<nav class="nav">
<h3>Report sections</h3>
<ul>
{{range .Sections}}<li><a href="#{{.ID}}">{{.Title}}</a></li>
{{end}}{{if .Warnings}}<li><a href="#warnings">Warnings</a></li>
{{end}}</ul>
</nav>
<main class="content">
{{if .Outliers}}<section class="report-section outliers">
<h2>Possible outliers</h2>
<ul>
{{range .Outliers}}<li>{{.}}</li>
{{end}}</ul>
</section>
{{end}}{{range .Sections}}<section id="{{.ID}}" class="report-section">
<h2>{{.Title}}</h2>
{{if .Table}}<div class="plot-container"><table>
<tr>{{range .Table.Header}}<th>{{.}}</th>{{end}}</tr>
{{range .Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table></div>
{{else}}<div class="plot-container">{{.SVG}}</div>
{{end}}</section>
{{end}}{{if .Warnings}}<section id="warnings" class="report-section warnings">
<h2>Warnings</h2>
<ul>
{{range .Warnings}}<li>{{.}}</li>
{{end}}</ul>
</section>
{{end}}</main>
</div>
<div class="footer">fastplong-multireport &middot; aggregated fastplong QC</div>
</body>
</html>
`
