package graph

// ComponentKind distinguishes how a component is declared
type ComponentKind string

const (
	KindFunction ComponentKind = "function"
	KindArrow    ComponentKind = "arrow"
	KindClass    ComponentKind = "class"
)

// PropInfo represents one component prop extracted from its type signature
type PropInfo struct {
	Name        string
	Type        string // printable rendering of the prop type
	Required    bool   // negation of the optional flag in source
	Default     string // destructuring default value, empty when absent
	Description string // attached documentation comment, empty when absent
}

// ComponentInfo represents one discovered UI component
type ComponentInfo struct {
	Name            string
	FilePath        string
	Props           []PropInfo
	IsDefaultExport bool
	Kind            ComponentKind
	Line            uint32
	Column          uint32
}

// GetProp retrieves a prop by name
func (c *ComponentInfo) GetProp(name string) *PropInfo {
	for i := range c.Props {
		if c.Props[i].Name == name {
			return &c.Props[i]
		}
	}
	return nil
}

// Catalog is the project-wide index of exported, component-shaped declarations.
// It is an immutable snapshot once built; refreshing means rebuilding and
// swapping the reference.
type Catalog struct {
	Components []*ComponentInfo

	nameMap map[string]int
}

// NewCatalog creates a catalog over the given components
func NewCatalog(components []*ComponentInfo) *Catalog {
	catalog := &Catalog{Components: components, nameMap: make(map[string]int, len(components))}
	for i, component := range components {
		if _, ok := catalog.nameMap[component.Name]; !ok {
			catalog.nameMap[component.Name] = i
		}
	}
	return catalog
}

// Lookup retrieves a component by exported name
func (c *Catalog) Lookup(name string) *ComponentInfo {
	if c == nil {
		return nil
	}
	if idx, ok := c.nameMap[name]; ok && idx < len(c.Components) {
		return c.Components[idx]
	}
	return nil
}

// Len returns the number of indexed components
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Components)
}
