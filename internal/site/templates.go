package site

// pageTemplate is the Go html/template for each content page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | OceanAI</title>
  <style>
    :root { --ocean-deep: #0c4a6e; --ocean: #0891b2; --foam: #ecfeff; }
    * { box-sizing: border-box; }
    body { margin: 0; font-family: system-ui, -apple-system, sans-serif; color: #0f172a; background: var(--foam); }
    header { background: linear-gradient(135deg, var(--ocean-deep), var(--ocean)); color: #fff; padding: 1rem 2rem; display: flex; gap: 1.5rem; align-items: center; }
    header a { color: #fff; text-decoration: none; opacity: .8; }
    header a.active, header a:hover { opacity: 1; text-decoration: underline; }
    header .brand { font-weight: 700; opacity: 1; margin-right: auto; }
    main { max-width: 760px; margin: 2rem auto; padding: 0 1.5rem; line-height: 1.6; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #bae6fd; padding: .5rem .75rem; text-align: left; }
    th { background: #e0f2fe; }
  </style>
</head>
<body>
  <header>
    <a class="brand" href="/">OceanAI</a>
    {{range .Nav}}<a href="/pages/{{.Slug}}"{{if eq .Slug $.Slug}} class="active"{{end}}>{{.Title}}</a>
    {{end}}
  </header>
  <main>
    {{.Content}}
  </main>
</body>
</html>
`
