package stopfilter

// English is the standard English stopword list (snowball set).
var English = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should",
	"now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren",
	"couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "ma",
	"mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren",
	"won", "wouldn",
	"i'm", "you're", "he's", "she's", "it's", "we're", "they're",
	"i've", "you've", "we've", "they've", "i'd", "you'd", "he'd",
	"she'd", "we'd", "they'd", "i'll", "you'll", "he'll", "she'll",
	"we'll", "they'll", "isn't", "aren't", "wasn't", "weren't",
	"hasn't", "haven't", "hadn't", "doesn't", "don't", "didn't",
	"won't", "wouldn't", "shan't", "shouldn't", "can't", "cannot",
	"couldn't", "mustn't", "let's", "that's", "who's", "what's",
	"here's", "there's", "when's", "where's", "why's", "how's",
}

// CustomDefault is the curated exclusion list for the scanned strategy
// books: digitization artifacts, page and figure markers, archaic
// contractions, and formatting tokens that survive tokenization.
var CustomDefault = []string{
	// page / figure / section markers from the scans
	"page", "pages", "pp", "chap", "chapter", "book", "vol", "vols",
	"fig", "figs", "figure", "plate", "plates", "footnote", "footnotes",
	"note", "notes", "sec", "sect", "section", "para", "illustration",
	"index", "preface", "introduction", "appendix", "contents", "translator",
	// roman numerals used as headings
	"ii", "iii", "iv", "vi", "vii", "viii", "ix", "x", "xi", "xii",
	"xiii", "xiv", "xv", "xvi", "xvii", "xviii", "xix", "xx",
	// OCR noise and broken fragments
	"tzu", "cht", "ch'i", "li", "lxi", "tseng", "hsing", "op", "cit",
	"ibid", "viz", "et", "seq", "de", "la", "le", "von", "der",
	// archaic contractions and forms
	"thou", "thee", "thy", "thine", "ye", "hath", "doth", "shalt",
	"wilt", "unto", "thereof", "therein", "thereby", "wherein",
	"whereby", "hereafter", "whatsoever", "howsoever",
	// generic report glue that drowns the signal
	"one", "two", "three", "first", "second", "third", "may", "must",
	"upon", "shall", "would", "could", "also", "much", "many", "every",
	"without", "within", "therefore", "thus", "hence", "yet", "even",
	"well", "us", "1", "2", "3",
}
