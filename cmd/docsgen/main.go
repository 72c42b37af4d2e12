package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/appengine-ltd/harvest-calc/internal/catalog"
	"github.com/appengine-ltd/harvest-calc/internal/farm"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	cat, err := catalog.Default()
	if err != nil {
		fatal(err)
	}

	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := generateDocs(cat)
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateDocs(cat *catalog.Catalog) []docFile {
	return []docFile{
		generateCropsDoc(cat),
		generateMutationsDoc(cat),
		generateRecipesDoc(),
	}
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the embedded catalog using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateCropsDoc(cat *catalog.Catalog) docFile {
	var b strings.Builder
	b.WriteString("# Crops\n\n")
	b.WriteString("Source: `internal/catalog/data/crops.toml`.\n\n")
	b.WriteString(fmt.Sprintf("Total crops: **%d**.\n\n", len(cat.Crops())))
	for _, category := range farm.AllCropCategories() {
		items := cat.SortedCrops(category)
		if len(items) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("## %s\n\n", strings.ToUpper(string(category[:1]))+string(category[1:])))
		b.WriteString("| Name | Price Coefficient | Max Weight (kg) | Label | Growth Speed | Exclusive Mutations |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, c := range items {
			growth := "unknown"
			if c.GrowthKnown() {
				growth = fmt.Sprintf("%g", c.GrowthSpeed)
			}
			b.WriteString("| ")
			b.WriteString(escape(c.Name))
			b.WriteString(" | ")
			b.WriteString(fmt.Sprintf("%.4f", c.PriceCoefficient))
			b.WriteString(" | ")
			b.WriteString(fmt.Sprintf("%g", c.MaxWeight))
			b.WriteString(" | ")
			b.WriteString(escape(c.Label))
			b.WriteString(" | ")
			b.WriteString(growth)
			b.WriteString(" | ")
			b.WriteString(escape(strings.Join(c.ExclusiveMutations, ", ")))
			b.WriteString(" |\n")
		}
		b.WriteString("\n")
	}
	return docFile{Name: "crops.md", Title: "Crops", Content: b.String()}
}

func generateMutationsDoc(cat *catalog.Catalog) docFile {
	items := cat.Mutations()
	exclusive := cat.AllExclusive()

	var b strings.Builder
	b.WriteString("# Mutations\n\n")
	b.WriteString("Source: `internal/catalog/data/mutations.toml`.\n\n")
	b.WriteString("Base and exclusive mutations multiply the price by their strongest member; regular mutations add up.\n\n")
	b.WriteString(fmt.Sprintf("Total mutations: **%d**.\n\n", len(items)))
	b.WriteString("| Name | Label | Color | Multiplier | Kind | Moon Only |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, m := range items {
		kind := farm.KindRegular
		switch {
		case farm.IsBaseMutation(m.Name):
			kind = farm.KindBase
		case slices.Contains(exclusive, m.Name):
			kind = farm.KindExclusive
		}
		b.WriteString("| ")
		b.WriteString(escape(m.Name))
		b.WriteString(" | ")
		b.WriteString(escape(m.Label))
		b.WriteString(" | ")
		b.WriteString(string(m.Color))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%g", m.Multiplier))
		b.WriteString(" | ")
		b.WriteString(kind.String())
		b.WriteString(" | ")
		b.WriteString(yesNo(farm.IsMoonOnly(m.Name)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "mutations.md", Title: "Mutations", Content: b.String()}
}

func generateRecipesDoc() docFile {
	items := farm.Recipes()

	var b strings.Builder
	b.WriteString("# Recipes\n\n")
	b.WriteString("Source: `internal/farm/recipes.go` (`Recipes`).\n\n")
	b.WriteString(fmt.Sprintf("Selecting a product locks out every precursor except %s.\n\n", farm.MutationMoist))
	b.WriteString("| Result | Ingredients | All Precursors |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, r := range items {
		b.WriteString("| ")
		b.WriteString(escape(r.Result))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(r.Ingredients, " + ")))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(farm.IngredientClosure(r.Result), ", ")))
		b.WriteString(" |\n")
	}
	return docFile{Name: "recipes.md", Title: "Recipes", Content: b.String()}
}


func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
