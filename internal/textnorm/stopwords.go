package textnorm

// lithuanianStopwords returns the Lithuanian stopword set. The list covers
// conjunctions, prepositions, pronouns, common interrogatives and auxiliary
// verb forms; tokens shorter than minTokenRunes are filtered separately but
// are kept here for completeness.
func lithuanianStopwords() map[string]struct{} {
	words := []string{
		"ir", "bei", "arba", "taip", "ne", "kad", "kur", "kaip", "kokie", "kokia",
		"koks", "kokios", "kiek", "kada", "kas", "kam", "kuo", "kodėl",
		"yra", "būti", "buvo", "būna", "bus", "esu", "esi", "esame", "esate",
		"tai", "tas", "ta", "tie", "tos", "šis", "ši", "šie", "šios", "ano",
		"jis", "ji", "jie", "jos", "mes", "jūs", "man", "mane", "mums", "jums",
		"savo", "mano", "tavo", "mūsų", "jūsų", "sau", "save",
		"su", "be", "iš", "ant", "po", "per", "prie", "nuo", "iki", "apie",
		"dėl", "už", "virš", "tarp", "prieš",
		"ar", "jog", "nes", "bet", "tačiau", "nors", "jei", "jeigu",
		"dar", "jau", "tik", "pat", "net", "gal", "čia", "ten", "vis",
		"labai", "daug", "visi", "visas", "viskas", "niekas", "nieko",
		"taigi", "todėl", "tada", "toks", "tokia", "tokie",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
