package main

import (
	"flag"

	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

const defaultOutPath = "./internal/infra/persistence/postgres/query"

func main() {
	outPath := flag.String("out", defaultOutPath, "directory of the generated query package")
	flag.Parse()

	g := gen.NewGenerator(generatorConfig(*outPath))

	g.ApplyBasic(model.All()...)

	g.Execute()
}

// generatorConfig emits typed, context-bound query builders. Pointer columns
// such as deleted_at stay nullable in the generated field types.
func generatorConfig(outPath string) gen.Config {
	return gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
	}
}
