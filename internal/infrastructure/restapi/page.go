package restapi

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>TON Connect Demo</title>
</head>
<body>
<main>
{{- if .View.Loading }}
  <div class="loading">Loading...</div>
{{- else }}
  <h1>TON Connect Demo</h1>
  {{- if .View.Connected }}
  <p>
    Connected: {{ .View.DisplayAddress }}
    <form method="post" action="/api/v1/wallet/copy" style="display:inline">
      <button type="submit" title="Copier l'adresse complète">Copy</button>
    </form>
  </p>
  {{- with .View.Notice }}
  <p class="notice notice-{{ .Level }}">{{ .Message }}</p>
  {{- end }}
  <form method="post" action="/api/v1/wallet/action">
    <button type="submit">Disconnect Wallet</button>
  </form>
  <table>
    <thead><tr><th>Image</th><th>Token</th><th>Balance</th></tr></thead>
    <tbody>
    {{- range .View.Tokens }}
      <tr>
        <td><img src="{{ .ImageURL }}" alt="{{ .DisplayName }}" width="40" height="40"></td>
        <td>
          <form method="post" action="/api/v1/tokens/{{ .Index }}/select" style="display:inline">
            <button type="submit">{{ .DisplayName }}</button>
          </form>
          <br><small>{{ .ContractAddress }}</small>
        </td>
        <td>{{ .Balance }}</td>
      </tr>
    {{- end }}
    </tbody>
  </table>
  {{- if and .View.SelectedToken .View.PriceHistory }}
  <h2>Historique des prix pour {{ .View.SelectedToken.DisplayName }}</h2>
  <table>
    <thead><tr><th>Date</th><th>Prix de clôture</th></tr></thead>
    <tbody>
    {{- range .View.PriceHistory }}
      <tr><td>{{ .Date }}</td><td>{{ .Close }}</td></tr>
    {{- end }}
    </tbody>
  </table>
  {{- end }}
  {{- else }}
  <form method="post" action="/api/v1/wallet/action">
    <input type="text" name="address" placeholder="Wallet address" required>
    <button type="submit">Connect TON Wallet</button>
  </form>
  {{- end }}
{{- end }}
</main>
</body>
</html>
`))
