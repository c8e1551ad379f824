package spec

type Rule struct {
	LHS          string     `json:"lhs"`
	Alternatives [][]string `json:"alternatives"`
}

type Description struct {
	Name      string   `json:"name"`
	Start     string   `json:"start"`
	Variables []string `json:"variables"`
	Terminals []string `json:"terminals"`
	Rules     []*Rule  `json:"rules"`
}

type Stage struct {
	Name            string   `json:"name"`
	VariableCount   int      `json:"variable_count"`
	ProductionCount int      `json:"production_count"`
	Rules           []string `json:"rules"`
}

type Report struct {
	Stages []*Stage `json:"stages"`
}
