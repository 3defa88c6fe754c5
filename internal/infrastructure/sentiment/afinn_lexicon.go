package sentiment

// afinnLexicon is the AFINN-165 subset covering the vocabulary that actually
// shows up in mobile-banking app reviews, with the original valence values.
var afinnLexicon = map[string]int{
	"abandon": -2, "ability": 2, "accept": 1, "accessible": 1, "accident": -2,
	"accomplish": 2, "accurate": 1, "ache": -2, "advantage": 2, "adventure": 1,
	"afraid": -2, "aggravate": -2, "agree": 1, "alert": -1, "amazing": 4,
	"angry": -3, "annoy": -2, "annoyed": -2, "annoying": -2, "anxious": -2,
	"appreciate": 2, "approve": 2, "argue": -2, "attack": -1, "awesome": 4,
	"awful": -3, "bad": -3, "ban": -2, "beautiful": 3, "benefit": 2,
	"best": 3, "better": 2, "block": -1, "blocked": -1, "boring": -3,
	"breeze": 2, "bright": 1, "brilliant": 4, "broke": -2, "broken": -1,
	"bug": -2, "buggy": -3, "bullshit": -4, "burden": -2, "calm": 2,
	"cancel": -1, "cancelled": -1, "careful": 2, "careless": -2, "charge": -1,
	"charged": -3, "cheat": -3, "cheated": -3, "clean": 2, "clear": 1,
	"clever": 2, "comfort": 2, "comfortable": 2, "complain": -2,
	"complaint": -2, "confident": 2, "confuse": -2, "confused": -2,
	"confusing": -2, "congrats": 2, "convenient": 2, "cool": 1, "correct": 2,
	"corrupt": -3, "crap": -3, "crash": -2, "crashed": -2, "crashes": -2,
	"crashing": -2, "crazy": -2, "damage": -3, "damn": -4, "dead": -3,
	"deceive": -3, "decline": -2, "declined": -2, "defect": -3, "delay": -1,
	"delayed": -2, "delight": 3, "delightful": 3, "denied": -2, "deny": -2,
	"despise": -3, "destroy": -3, "difficult": -1, "disappoint": -2,
	"disappointed": -2, "disappointing": -2, "disaster": -2, "dishonest": -2,
	"dislike": -2, "disturb": -2, "doubt": -1, "dreadful": -3, "easy": 1,
	"effective": 2, "efficient": 2, "effortless": 2, "embarrass": -2,
	"empower": 2, "enjoy": 2, "enjoyed": 2, "error": -2, "errors": -2,
	"excellent": 3, "excite": 3, "excited": 3, "expire": -1, "expired": -1,
	"fail": -2, "failed": -2, "failing": -2, "fails": -2, "failure": -2,
	"fake": -3, "fantastic": 4, "fast": 1, "fault": -2, "faulty": -2,
	"favorite": 2, "fear": -2, "fee": -1, "fine": 2, "fix": 1, "fixed": 1,
	"flawless": 2, "fraud": -4, "fraudulent": -4, "freeze": -1, "frozen": -1,
	"frustrate": -2, "frustrated": -2, "frustrating": -2, "frustration": -2,
	"fun": 4, "garbage": -1, "glad": 3, "glitch": -2, "good": 3, "great": 3,
	"greatest": 3, "happy": 3, "hate": -3, "hassle": -2, "hate's": -3,
	"helpful": 2, "helpless": -2, "horrible": -3, "hopeless": -2, "ideal": 2,
	"impatient": -2, "important": 2, "impress": 3, "impressed": 3,
	"improve": 2, "improved": 2, "improvement": 2, "inconvenient": -2,
	"incorrect": -2, "insecure": -2, "intuitive": 2, "issue": -1,
	"issues": -1, "joy": 3, "junk": -3, "lag": -2, "lagging": -2, "lags": -2,
	"lame": -2, "like": 2, "limit": -1, "limited": -1, "lose": -3,
	"loss": -3, "lost": -3, "love": 3, "loved": 3, "lovely": 3, "loves": 3,
	"mess": -2, "messy": -2, "miss": -2, "missing": -2, "mistake": -2,
	"mistakes": -2, "nice": 3, "noisy": -1, "nonsense": -2, "outage": -2,
	"outdated": -1, "outstanding": 5, "pain": -2, "painful": -2,
	"pathetic": -2, "perfect": 3, "perfectly": 3, "please": 1, "pleased": 3,
	"pleasure": 3, "poor": -2, "poorly": -2, "problem": -2, "problems": -2,
	"prompt": 1, "protect": 1, "proud": 2, "quick": 1, "quickly": 1,
	"recommend": 2, "recommended": 2, "refund": -1, "refuse": -2,
	"refused": -2, "regret": -2, "reject": -1, "rejected": -1, "reliable": 2,
	"resolve": 2, "resolved": 2, "responsive": 2, "restrict": -2,
	"restricted": -2, "reward": 2, "rich": 2, "right": 1, "risk": -2,
	"robust": 2, "rubbish": -2, "sad": -2, "satisfied": 2, "scam": -2,
	"scandal": -3, "secure": 2, "seamless": 2, "simple": 1, "slow": -2,
	"smart": 1, "smooth": 2, "solid": 2, "solve": 1, "solved": 1,
	"sorry": -1, "stable": 2, "steal": -3, "stole": -3, "stolen": -3,
	"stop": -1, "stopped": -1, "stress": -1, "stuck": -2, "stupid": -2,
	"succeed": 3, "success": 2, "successful": 3, "suck": -3, "sucks": -3,
	"super": 3, "superb": 5, "support": 2, "terrible": -3, "thank": 2,
	"thanks": 2, "top": 2, "trash": -1, "trouble": -2, "trust": 1,
	"trusted": 2, "trustworthy": 2, "ugly": -3, "unable": -2,
	"unacceptable": -2, "unbelievable": -1, "uncomfortable": -2,
	"unhappy": -2, "uninstall": -2, "uninstalled": -2, "unreliable": -2,
	"unresponsive": -2, "unstable": -2, "upgrade": 1, "upset": -2,
	"useful": 2, "useless": -2, "waste": -1, "wasted": -2, "weak": -2,
	"welcome": 2, "wonderful": 4, "worse": -3, "worst": -3, "worthless": -2,
	"worry": -3, "worried": -3, "wow": 4, "wrong": -2,
}
