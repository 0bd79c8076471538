// Package brand holds the data-driven catalog of Publimicro's vertical
// sub-brands. Each brand is configuration (name, palette, per-locale copy),
// so one handler serves every marketing surface instead of one page per
// brand.
package brand

import "sort"

type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type Brand struct {
	Key      string            `json:"key"`
	Name     string            `json:"name"`
	Palette  Palette           `json:"palette"`
	Taglines map[string]string `json:"taglines"`
}

type Catalog struct {
	brands map[string]Brand
	keys   []string
}

func NewCatalog(brands []Brand) *Catalog {
	c := &Catalog{brands: make(map[string]Brand, len(brands))}
	for _, b := range brands {
		if _, exists := c.brands[b.Key]; exists {
			continue
		}
		c.brands[b.Key] = b
		c.keys = append(c.keys, b.Key)
	}
	sort.Strings(c.keys)
	return c
}

func (c *Catalog) Get(key string) (Brand, bool) {
	b, ok := c.brands[key]
	return b, ok
}

func (c *Catalog) All() []Brand {
	all := make([]Brand, 0, len(c.keys))
	for _, key := range c.keys {
		all = append(all, c.brands[key])
	}
	return all
}

// Default is the production catalog: the umbrella brand plus one entry per
// vertical.
func Default() *Catalog {
	return NewCatalog([]Brand{
		{
			Key:  "publimicro",
			Name: "Publimicro",
			Palette: Palette{Primary: "#0F4C81", Secondary: "#F5F7FA", Accent: "#FFB400"},
			Taglines: map[string]string{
				"pt": "Anuncie tudo, em todo lugar",
				"en": "List anything, anywhere",
				"es": "Anuncia todo, en todas partes",
			},
		},
		{
			Key:  "publimoveis",
			Name: "Publimóveis",
			Palette: Palette{Primary: "#1B5E20", Secondary: "#F1F8E9", Accent: "#FF7043"},
			Taglines: map[string]string{
				"pt": "Seu próximo imóvel está aqui",
				"en": "Your next property is here",
				"es": "Tu próxima propiedad está aquí",
			},
		},
		{
			Key:  "publimotors",
			Name: "Publimotors",
			Palette: Palette{Primary: "#B71C1C", Secondary: "#FAFAFA", Accent: "#212121"},
			Taglines: map[string]string{
				"pt": "Carros, motos e muito mais",
				"en": "Cars, bikes and beyond",
				"es": "Autos, motos y mucho más",
			},
		},
		{
			Key:  "publimaquinas",
			Name: "Publimáquinas",
			Palette: Palette{Primary: "#E65100", Secondary: "#FFF3E0", Accent: "#37474F"},
			Taglines: map[string]string{
				"pt": "Máquinas e equipamentos pesados",
				"en": "Heavy machinery and equipment",
				"es": "Maquinaria y equipos pesados",
			},
		},
		{
			Key:  "publinautica",
			Name: "Publináutica",
			Palette: Palette{Primary: "#01579B", Secondary: "#E1F5FE", Accent: "#00BFA5"},
			Taglines: map[string]string{
				"pt": "Barcos e lanchas à venda",
				"en": "Boats and yachts for sale",
				"es": "Barcos y lanchas en venta",
			},
		},
		{
			Key:  "publioutdoor",
			Name: "Publioutdoor",
			Palette: Palette{Primary: "#33691E", Secondary: "#F9FBE7", Accent: "#8D6E63"},
			Taglines: map[string]string{
				"pt": "Aventura e vida ao ar livre",
				"en": "Adventure and outdoor living",
				"es": "Aventura y vida al aire libre",
			},
		},
		{
			Key:  "publitravel",
			Name: "Publitravel",
			Palette: Palette{Primary: "#4A148C", Secondary: "#F3E5F5", Accent: "#FFC107"},
			Taglines: map[string]string{
				"pt": "Roteiros e experiências de viagem",
				"en": "Travel routes and experiences",
				"es": "Rutas y experiencias de viaje",
			},
		},
	})
}
