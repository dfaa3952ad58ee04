package morph

// irregularVerbs is the closed table of English irregular verb base forms
// and their full form sets (§4.D). Roughly 55 entries, as documented.
var irregularVerbs = map[string][]string{
	"be":      {"am", "is", "are", "was", "were", "been", "being", "be"},
	"have":    {"have", "has", "had", "having"},
	"do":      {"do", "does", "did", "done", "doing"},
	"go":      {"go", "goes", "went", "gone", "going"},
	"say":     {"say", "says", "said", "saying"},
	"get":     {"get", "gets", "got", "gotten", "getting"},
	"make":    {"make", "makes", "made", "making"},
	"know":    {"know", "knows", "knew", "known", "knowing"},
	"think":   {"think", "thinks", "thought", "thinking"},
	"take":    {"take", "takes", "took", "taken", "taking"},
	"see":     {"see", "sees", "saw", "seen", "seeing"},
	"come":    {"come", "comes", "came", "coming"},
	"give":    {"give", "gives", "gave", "given", "giving"},
	"find":    {"find", "finds", "found", "finding"},
	"tell":    {"tell", "tells", "told", "telling"},
	"ask":     {"ask", "asks", "asked", "asking"},
	"work":    {"work", "works", "worked", "working"},
	"seem":    {"seem", "seems", "seemed", "seeming"},
	"feel":    {"feel", "feels", "felt", "feeling"},
	"leave":   {"leave", "leaves", "left", "leaving"},
	"call":    {"call", "calls", "called", "calling"},
	"put":     {"put", "puts", "putting"},
	"mean":    {"mean", "means", "meant", "meaning"},
	"keep":    {"keep", "keeps", "kept", "keeping"},
	"let":     {"let", "lets", "letting"},
	"begin":   {"begin", "begins", "began", "begun", "beginning"},
	"bring":   {"bring", "brings", "brought", "bringing"},
	"hold":    {"hold", "holds", "held", "holding"},
	"write":   {"write", "writes", "wrote", "written", "writing"},
	"stand":   {"stand", "stands", "stood", "standing"},
	"hear":    {"hear", "hears", "heard", "hearing"},
	"let-go":  {"let-go"},
	"speak":   {"speak", "speaks", "spoke", "spoken", "speaking"},
	"read":    {"read", "reads", "reading"},
	"spend":   {"spend", "spends", "spent", "spending"},
	"grow":    {"grow", "grows", "grew", "grown", "growing"},
	"fall":    {"fall", "falls", "fell", "fallen", "falling"},
	"send":    {"send", "sends", "sent", "sending"},
	"build":   {"build", "builds", "built", "building"},
	"break":   {"break", "breaks", "broke", "broken", "breaking"},
	"run":     {"run", "runs", "ran", "running"},
	"drive":   {"drive", "drives", "drove", "driven", "driving"},
	"lead":    {"lead", "leads", "led", "leading"},
	"eat":     {"eat", "eats", "ate", "eaten", "eating"},
	"rise":    {"rise", "rises", "rose", "risen", "rising"},
	"fight":   {"fight", "fights", "fought", "fighting"},
	"catch":   {"catch", "catches", "caught", "catching"},
	"teach":   {"teach", "teaches", "taught", "teaching"},
	"sit":     {"sit", "sits", "sat", "sitting"},
	"draw":    {"draw", "draws", "drew", "drawn", "drawing"},
	"drink":   {"drink", "drinks", "drank", "drunk", "drinking"},
	"sing":    {"sing", "sings", "sang", "sung", "singing"},
	"forgive": {"forgive", "forgives", "forgave", "forgiven", "forgiving"},
	"bear":    {"bear", "bears", "bore", "borne", "bearing"},
	"choose":  {"choose", "chooses", "chose", "chosen", "choosing"},
	"cast":    {"cast", "casts", "casting"},
	"shine":   {"shine", "shines", "shone", "shining"},
}

// irregularReverse maps every surface form back to its base. Built once
// in init.
var irregularReverse map[string]string

func init() {
	irregularReverse = make(map[string]string)
	for base, forms := range irregularVerbs {
		for _, f := range forms {
			irregularReverse[f] = base
		}
	}
}

// IrregularForms returns the full form set for the given base, or nil.
func IrregularForms(base string) []string {
	if forms, ok := irregularVerbs[base]; ok {
		out := make([]string, len(forms))
		copy(out, forms)
		return out
	}
	return nil
}

// IrregularBase returns the base verb for a surface form, if it is a known
// irregular form.
func IrregularBase(form string) (string, bool) {
	base, ok := irregularReverse[form]
	return base, ok
}
