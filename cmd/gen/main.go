package main

import (
	"catalog/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.SkuModel{},
		model.CredentialModel{},
		model.SkuEventModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
