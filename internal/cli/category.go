package cli

import "fmt"

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	added, err := eng.AddCategory(c.Name)
	if err != nil {
		return err
	}
	if !added {
		fmt.Printf("Category %q already exists.\n", c.Name)
		return nil
	}
	fmt.Printf("Added category: %s\n", c.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	for _, cat := range eng.Categories() {
		fmt.Println(cat)
	}
	return nil
}
