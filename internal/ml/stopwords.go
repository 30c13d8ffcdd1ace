package ml

// Combined Portuguese and English stop-word list excluded from the TF-IDF
// vocabulary. Same function-word inventory the training corpus was originally
// filtered with; terms are stored pre-normalized (lowercase, no diacritics)
// because the vectorizer only ever sees normalized text.
var stopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	words := []string{
		// Portuguese
		"a", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles", "aquilo",
		"as", "ate", "com", "como", "da", "das", "de", "dela", "delas", "dele",
		"deles", "depois", "do", "dos", "e", "ela", "elas", "ele", "eles",
		"em", "entre", "era", "eram", "essa", "essas", "esse", "esses", "esta",
		"estamos", "estao", "estas", "estava", "estavam", "este", "esteja",
		"estejam", "estejamos", "estes", "esteve", "estive", "estivemos",
		"estiver", "estivera", "estiveram", "estiverem", "estivermos", "estou",
		"eu", "foi", "fomos", "for", "fora", "foram", "forem", "formos",
		"fosse", "fossem", "fui", "ha", "haja", "hajam", "hajamos", "hao",
		"havemos", "hei", "houve", "houvemos", "houver", "houvera",
		"houveram", "houverao", "houverei", "houverem", "houveremos",
		"houveria", "houveriam", "houvermos", "houvesse", "houvessem", "isso",
		"isto", "ja", "lhe", "lhes", "mais", "mas", "me", "mesmo", "meu",
		"meus", "minha", "minhas", "muito", "na", "nao", "nas", "nem", "no",
		"nos", "nossa", "nossas", "nosso", "nossos", "num", "numa", "o", "os",
		"ou", "para", "pela", "pelas", "pelo", "pelos", "por", "qual",
		"quando", "que", "quem", "sao", "se", "seja", "sejam", "sejamos",
		"sem", "sera", "serao", "serei", "seremos", "seria", "seriam", "seu",
		"seus", "so", "somos", "sou", "sua", "suas", "tambem", "te", "tem",
		"temos", "tenha", "tenham", "tenhamos", "tenho", "tera", "terao",
		"terei", "teremos", "teria", "teriam", "teu", "teus", "teve", "tinha",
		"tinham", "tive", "tivemos", "tiver", "tivera", "tiveram", "tiverem",
		"tivermos", "tivesse", "tivessem", "tu", "tua", "tuas", "um", "uma",
		"voce", "voces", "vos",
		// English
		"about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "aren", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "couldn",
		"did", "didn", "does", "doesn", "doing", "don", "down", "during",
		"each", "few", "from", "further", "had", "hadn", "has", "hasn",
		"have", "haven", "having", "he", "her", "here", "hers", "herself",
		"him", "himself", "his", "how", "i", "if", "in", "into", "is", "isn",
		"it", "its", "itself", "just", "ll", "m", "ma", "mightn", "more",
		"most", "mustn", "my", "myself", "needn", "now", "of", "off", "on",
		"once", "only", "or", "other", "our", "ours", "ourselves", "out",
		"over", "own", "re", "s", "same", "shan", "she", "should", "shouldn",
		"some", "such", "t", "than", "that", "the", "their", "theirs", "them",
		"themselves", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "ve", "very", "was",
		"wasn", "we", "were", "weren", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "won", "wouldn", "y",
		"you", "your", "yours", "yourself", "yourselves",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopWord reports whether a normalized token is excluded from feature
// extraction.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
