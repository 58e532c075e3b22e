package main

import (
	"booknow/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models. The repositories
// use plain gorm; the generated package is for ad-hoc tooling and reports.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
