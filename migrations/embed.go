// Package migrations embute as migrações goose para que os binários e os testes
// não dependam do diretório de trabalho.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
