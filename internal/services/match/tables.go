package match

// irregularPlurals maps irregular plural forms to their singular
var irregularPlurals = map[string]string{
	"mice":       "mouse",
	"men":        "man",
	"women":      "woman",
	"children":   "child",
	"feet":       "foot",
	"teeth":      "tooth",
	"geese":      "goose",
	"people":     "person",
	"leaves":     "leaf",
	"lives":      "life",
	"wives":      "wife",
	"knives":     "knife",
	"wolves":     "wolf",
	"halves":     "half",
	"selves":     "self",
	"elves":      "elf",
	"loaves":     "loaf",
	"potatoes":   "potato",
	"tomatoes":   "tomato",
	"heroes":     "hero",
	"echoes":     "echo",
	"fish":       "fish",
	"sheep":      "sheep",
	"deer":       "deer",
	"series":     "series",
	"species":    "species",
	"cacti":      "cactus",
	"fungi":      "fungus",
	"octopi":     "octopus",
	"radii":      "radius",
	"appendices": "appendix",
	"matrices":   "matrix",
	"vertices":   "vertex",
	"indices":    "index",
	"oxen":       "ox",
	"lice":       "louse",
	"alumni":     "alumnus",
	"criteria":   "criterion",
	"phenomena":  "phenomenon",
	"data":       "datum",
	"media":      "medium",
}

// misspellings maps common typos to their intended spelling
var misspellings = map[string]string{
	"wierd":        "weird",
	"recieve":      "receive",
	"beleive":      "believe",
	"freind":       "friend",
	"thier":        "their",
	"definately":   "definitely",
	"occured":      "occurred",
	"seperate":     "separate",
	"untill":       "until",
	"tommorow":     "tomorrow",
	"accomodate":   "accommodate",
	"occurence":    "occurrence",
	"neccessary":   "necessary",
	"goverment":    "government",
	"enviroment":   "environment",
	"resturant":    "restaurant",
	"restaraunt":   "restaurant",
	"calender":     "calendar",
	"comming":      "coming",
	"begining":     "beginning",
	"beatiful":     "beautiful",
	"buisness":     "business",
	"concious":     "conscious",
	"foriegn":      "foreign",
	"gaurd":        "guard",
	"happend":      "happened",
	"harrass":      "harass",
	"independant":  "independent",
	"knowlege":     "knowledge",
	"liason":       "liaison",
	"lightening":   "lightning",
	"maintainance": "maintenance",
	"millenium":    "millennium",
	"minature":     "miniature",
	"mischievious": "mischievous",
	"noticable":    "noticeable",
	"paralell":     "parallel",
	"persistant":   "persistent",
	"posession":    "possession",
	"privelege":    "privilege",
	"publically":   "publicly",
	"recomend":     "recommend",
	"refered":      "referred",
	"relevent":     "relevant",
	"religous":     "religious",
	"rythm":        "rhythm",
	"sieze":        "seize",
	"suprise":      "surprise",
	"truely":       "truly",
	"vaccuum":      "vacuum",
	"wether":       "weather",
	"writting":     "writing",
	// Common game-related typos
	"baloon":    "balloon",
	"choclate":  "chocolate",
	"sandwitch": "sandwich",
	"hamburgur": "hamburger",
	"spagetti":  "spaghetti",
	"brocolli":  "broccoli",
	"guiter":    "guitar",
	"mountian":  "mountain",
	"monky":     "monkey",
	"elphant":   "elephant",
	"giraff":    "giraffe",
	"dinasaur":  "dinosaur",
	"dinasour":  "dinosaur",
	"alein":     "alien",
	"pinapple":  "pineapple",
	"strawbery": "strawberry",
	"cherrys":   "cherry",
	"banna":     "banana",
	"oarnge":    "orange",
	"purpel":    "purple",
}

// spellingVariants maps British spellings to their American equivalent
var spellingVariants = map[string]string{
	"colour":     "color",
	"favourite":  "favorite",
	"honour":     "honor",
	"neighbour":  "neighbor",
	"theatre":    "theater",
	"centre":     "center",
	"metre":      "meter",
	"litre":      "liter",
	"defence":    "defense",
	"offence":    "offense",
	"licence":    "license",
	"practise":   "practice",
	"analyse":    "analyze",
	"organise":   "organize",
	"realise":    "realize",
	"recognise":  "recognize",
	"apologise":  "apologize",
	"travelling": "traveling",
	"cancelled":  "canceled",
	"jewellery":  "jewelry",
	"grey":       "gray",
	"cheque":     "check",
	"catalogue":  "catalog",
	"dialogue":   "dialog",
	"programme":  "program",
	"aeroplane":  "airplane",
	"aluminium":  "aluminum",
	"moustache":  "mustache",
	"pyjamas":    "pajamas",
	"doughnut":   "donut",
}

// numberWords maps number words to digits
var numberWords = map[string]string{
	"zero":   "0",
	"one":    "1",
	"two":    "2",
	"three":  "3",
	"four":   "4",
	"five":   "5",
	"six":    "6",
	"seven":  "7",
	"eight":  "8",
	"nine":   "9",
	"ten":    "10",
	"first":  "1st",
	"second": "2nd",
	"third":  "3rd",
}
