package sentiment

// patternLexicon carries (polarity, subjectivity) pairs in the pattern.en
// format for the adjective/adverb vocabulary common in app reviews.
var patternLexicon = map[string]patternEntry{
	"amazing":       {0.6, 0.9},
	"annoying":      {-0.7, 0.8},
	"awesome":       {1.0, 1.0},
	"awful":         {-1.0, 1.0},
	"bad":           {-0.7, 0.667},
	"beautiful":     {0.85, 1.0},
	"best":          {1.0, 0.3},
	"better":        {0.5, 0.5},
	"boring":        {-1.0, 1.0},
	"broken":        {-0.4, 0.4},
	"buggy":         {-0.6, 0.7},
	"clean":         {0.367, 0.633},
	"clear":         {0.1, 0.383},
	"comfortable":   {0.4, 0.6},
	"confusing":     {-0.3, 0.7},
	"convenient":    {0.4, 0.5},
	"cool":          {0.35, 0.65},
	"correct":       {0.25, 0.3},
	"crap":          {-0.8, 0.8},
	"crashing":      {-0.5, 0.5},
	"difficult":     {-0.5, 1.0},
	"disappointing": {-0.6, 0.7},
	"dreadful":      {-1.0, 1.0},
	"easy":          {0.433, 0.833},
	"effective":     {0.6, 0.8},
	"efficient":     {0.5, 0.8},
	"excellent":     {1.0, 1.0},
	"fake":          {-0.5, 0.8},
	"fantastic":     {0.4, 0.9},
	"fast":          {0.2, 0.6},
	"faulty":        {-0.6, 0.8},
	"fine":          {0.417, 0.444},
	"frustrating":   {-0.6, 0.8},
	"glitchy":       {-0.5, 0.7},
	"good":          {0.7, 0.6},
	"great":         {0.8, 0.75},
	"happy":         {0.8, 1.0},
	"helpful":       {0.3, 0.5},
	"horrible":      {-1.0, 1.0},
	"inconvenient":  {-0.4, 0.5},
	"incorrect":     {-0.3, 0.4},
	"intuitive":     {0.4, 0.7},
	"lame":          {-0.5, 0.75},
	"limited":       {-0.2, 0.4},
	"lovely":        {0.5, 0.7},
	"modern":        {0.2, 0.3},
	"new":           {0.136, 0.455},
	"nice":          {0.6, 1.0},
	"old":           {0.1, 0.2},
	"outstanding":   {1.0, 1.0},
	"pathetic":      {-0.8, 1.0},
	"perfect":       {1.0, 1.0},
	"pleasant":      {0.733, 0.867},
	"poor":          {-0.4, 0.6},
	"quick":         {0.333, 0.5},
	"reliable":      {0.5, 0.6},
	"responsive":    {0.4, 0.6},
	"rubbish":       {-0.7, 0.8},
	"sad":           {-0.5, 1.0},
	"satisfied":     {0.5, 0.7},
	"seamless":      {0.5, 0.6},
	"secure":        {0.4, 0.5},
	"simple":        {0.0, 0.357},
	"slow":          {-0.3, 0.4},
	"smooth":        {0.4, 0.6},
	"stable":        {0.3, 0.4},
	"stupid":        {-0.8, 0.9},
	"super":         {0.333, 0.633},
	"terrible":      {-1.0, 1.0},
	"ugly":          {-0.7, 1.0},
	"unacceptable":  {-0.6, 0.8},
	"unreliable":    {-0.5, 0.6},
	"unresponsive":  {-0.4, 0.6},
	"unstable":      {-0.4, 0.5},
	"unusable":      {-0.7, 0.8},
	"useful":        {0.3, 0.3},
	"useless":       {-0.5, 0.4},
	"wonderful":     {1.0, 1.0},
	"worse":         {-0.8, 0.8},
	"worst":         {-1.0, 1.0},
	"wrong":         {-0.5, 0.5},
}
