package yamlfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/catalog"
	"craftatlas/internal/domain/planning"
)

// Provider holds the reference catalogs in memory and serves snapshots of
// them. Admin overrides mutate recipes in place and rebuild the planner
// index; the lock covers both.
type Provider struct {
	mu         sync.RWMutex
	items      []catalog.Item
	recipes    []catalog.Recipe
	categories catalog.CategoryMap
	modules    map[string]catalog.TechModule
	index      planning.Index
}

type itemsFile struct {
	Items []catalog.Item `yaml:"items"`
}

type recipesFile struct {
	Recipes []catalog.Recipe `yaml:"recipes"`
}

type categoriesFile struct {
	Categories map[string]string `yaml:"categories"`
}

type modulesFile struct {
	Modules []catalog.TechModule `yaml:"modules"`
}

// Load reads items.yaml, recipes.yaml, categories.yaml and modules.yaml
// from dir. Missing files yield empty datasets; malformed files fail.
func Load(dir string) (*Provider, error) {
	var items itemsFile
	if err := readYAML(filepath.Join(dir, "items.yaml"), &items); err != nil {
		return nil, err
	}
	var recipes recipesFile
	if err := readYAML(filepath.Join(dir, "recipes.yaml"), &recipes); err != nil {
		return nil, err
	}
	var categories categoriesFile
	if err := readYAML(filepath.Join(dir, "categories.yaml"), &categories); err != nil {
		return nil, err
	}
	var modules modulesFile
	if err := readYAML(filepath.Join(dir, "modules.yaml"), &modules); err != nil {
		return nil, err
	}
	return New(items.Items, recipes.Recipes, categories.Categories, modules.Modules), nil
}

// New builds a provider from already-parsed datasets.
func New(items []catalog.Item, recipes []catalog.Recipe, categories map[string]string, modules []catalog.TechModule) *Provider {
	p := &Provider{
		items:      items,
		categories: catalog.CategoryMap(categories),
		modules:    make(map[string]catalog.TechModule, len(modules)),
	}
	p.recipes = make([]catalog.Recipe, len(recipes))
	for i, r := range recipes {
		p.recipes[i] = r.Clone()
	}
	for _, m := range modules {
		p.modules[m.ID] = m
	}
	p.index = planning.NewIndex(p.recipes)
	return p
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (p *Provider) Items(context.Context) []catalog.Item {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]catalog.Item, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Provider) Recipes(context.Context) []catalog.Recipe {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]catalog.Recipe, len(p.recipes))
	for i, r := range p.recipes {
		out[i] = r.Clone()
	}
	return out
}

func (p *Provider) Recipe(_ context.Context, id string) (catalog.Recipe, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, r := range p.recipes {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return catalog.Recipe{}, ports.ErrNotFound
}

func (p *Provider) Categories(context.Context) catalog.CategoryMap {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(catalog.CategoryMap, len(p.categories))
	for k, v := range p.categories {
		out[k] = v
	}
	return out
}

func (p *Provider) Modules(context.Context) map[string]catalog.TechModule {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]catalog.TechModule, len(p.modules))
	for k, v := range p.modules {
		out[k] = v
	}
	return out
}

// Index returns the current planner index. The index is rebuilt on every
// override, never mutated, so sharing it read-only is safe.
func (p *Provider) Index(context.Context) planning.Index {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.index
}

func (p *Provider) ApplyOverride(_ context.Context, override ports.RecipeOverrideRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.recipes {
		if p.recipes[i].ID != override.RecipeID {
			continue
		}
		p.recipes[i].Name = override.Name
		p.recipes[i].Quantity = override.Quantity
		p.recipes[i].TimeSeconds = override.TimeSeconds
		inputs := make([]catalog.RecipeInput, len(override.Inputs))
		copy(inputs, override.Inputs)
		p.recipes[i].Inputs = inputs
		p.index = planning.NewIndex(p.recipes)
		return nil
	}
	return ports.ErrNotFound
}
