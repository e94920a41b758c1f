package catalog

// matchup lists which categories one category hits hard, is hit hard by,
// and takes no damage from.
type matchup struct {
	strongAgainst []string
	weakAgainst   []string
	immuneTo      []string
}

var matchups = map[string]matchup{
	"normal":   {nil, []string{"fighting"}, []string{"ghost"}},
	"fighting": {[]string{"normal", "ice", "rock", "dark", "steel"}, []string{"flying", "psychic", "fairy"}, nil},
	"flying":   {[]string{"fighting", "bug", "grass"}, []string{"electric", "ice", "rock"}, []string{"ground"}},
	"poison":   {[]string{"grass", "fairy"}, []string{"ground", "psychic"}, nil},
	"ground":   {[]string{"poison", "rock", "steel", "fire", "electric"}, []string{"water", "grass", "ice"}, []string{"electric"}},
	"rock":     {[]string{"flying", "bug", "fire", "ice"}, []string{"fighting", "ground", "steel", "water", "grass"}, nil},
	"bug":      {[]string{"grass", "psychic", "dark"}, []string{"flying", "rock", "fire"}, nil},
	"ghost":    {[]string{"ghost", "psychic"}, []string{"ghost", "dark"}, []string{"normal", "fighting"}},
	"steel":    {[]string{"ice", "rock", "fairy"}, []string{"fighting", "ground", "fire"}, []string{"poison"}},
	"fire":     {[]string{"bug", "steel", "grass", "ice"}, []string{"ground", "rock", "water"}, nil},
	"water":    {[]string{"ground", "rock", "fire"}, []string{"grass", "electric"}, nil},
	"grass":    {[]string{"ground", "rock", "water"}, []string{"flying", "poison", "bug", "fire", "ice"}, nil},
	"electric": {[]string{"flying", "water"}, []string{"ground"}, nil},
	"psychic":  {[]string{"fighting", "poison"}, []string{"bug", "ghost", "dark"}, nil},
	"ice":      {[]string{"flying", "ground", "grass", "dragon"}, []string{"fighting", "rock", "steel", "fire"}, nil},
	"dragon":   {[]string{"dragon"}, []string{"ice", "dragon", "fairy"}, nil},
	"dark":     {[]string{"ghost", "psychic"}, []string{"fighting", "bug", "fairy"}, []string{"psychic"}},
	"fairy":    {[]string{"fighting", "dragon", "dark"}, []string{"poison", "steel"}, []string{"dragon"}},
}

// Effectiveness is the merged matchup of a multi-category entity.
type Effectiveness struct {
	StrongAgainst []string `json:"strong_against"`
	WeakAgainst   []string `json:"weak_against"`
	ImmuneTo      []string `json:"immune_to"`
}

// EffectivenessOf unions the matchups of every category, keeping the order
// in which each name first appears. Unknown categories contribute nothing.
func EffectivenessOf(categories []string) Effectiveness {
	out := Effectiveness{StrongAgainst: []string{}, WeakAgainst: []string{}, ImmuneTo: []string{}}
	seen := [3]map[string]bool{{}, {}, {}}
	add := func(i int, dst *[]string, names []string) {
		for _, n := range names {
			if !seen[i][n] {
				seen[i][n] = true
				*dst = append(*dst, n)
			}
		}
	}
	for _, c := range categories {
		m, ok := matchups[c]
		if !ok {
			continue
		}
		add(0, &out.StrongAgainst, m.strongAgainst)
		add(1, &out.WeakAgainst, m.weakAgainst)
		add(2, &out.ImmuneTo, m.immuneTo)
	}
	return out
}
