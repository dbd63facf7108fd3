package analysis

// sentimentWord holds the polarity in [-1,1] and subjectivity in [0,1] of a
// single opinion word.
type sentimentWord struct {
	polarity     float64
	subjectivity float64
}

// opinionLexicon is a small review-oriented word list in the style of the
// pattern/TextBlob adjective lexicon.
var opinionLexicon = map[string]sentimentWord{
	// positive
	"amazing":      {0.6, 0.9},
	"awesome":      {1.0, 1.0},
	"beautiful":    {0.85, 1.0},
	"beautifully":  {0.85, 1.0},
	"best":         {1.0, 0.3},
	"brilliant":    {0.9, 1.0},
	"brilliantly":  {0.9, 1.0},
	"captivating":  {0.7, 0.8},
	"charming":     {0.5, 0.7},
	"clever":       {0.5, 0.6},
	"compelling":   {0.6, 0.7},
	"cool":         {0.35, 0.65},
	"delightful":   {0.85, 0.9},
	"enjoy":        {0.4, 0.5},
	"enjoyable":    {0.5, 0.6},
	"enjoyed":      {0.4, 0.5},
	"entertaining": {0.5, 0.6},
	"excellent":    {1.0, 1.0},
	"exceptional":  {0.65, 0.85},
	"fantastic":    {0.4, 0.9},
	"favorite":     {0.5, 1.0},
	"favourite":    {0.5, 1.0},
	"fun":          {0.3, 0.2},
	"funny":        {0.25, 1.0},
	"gem":          {0.6, 0.8},
	"gorgeous":     {0.7, 0.9},
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"gripping":     {0.6, 0.7},
	"happy":        {0.8, 1.0},
	"hilarious":    {0.5, 1.0},
	"incredible":   {0.9, 0.9},
	"interesting":  {0.5, 0.5},
	"like":         {0.2, 0.3},
	"liked":        {0.3, 0.4},
	"love":         {0.5, 0.6},
	"loved":        {0.7, 0.8},
	"lovely":       {0.5, 0.75},
	"masterpiece":  {0.8, 0.9},
	"nice":         {0.6, 1.0},
	"perfect":      {1.0, 1.0},
	"perfectly":    {1.0, 1.0},
	"phenomenal":   {0.9, 0.9},
	"powerful":     {0.3, 1.0},
	"recommend":    {0.4, 0.4},
	"refreshing":   {0.5, 0.6},
	"satisfying":   {0.5, 0.6},
	"solid":        {0.3, 0.4},
	"strong":       {0.43, 0.73},
	"stunning":     {0.5, 0.8},
	"superb":       {1.0, 1.0},
	"sweet":        {0.35, 0.65},
	"touching":     {0.5, 0.8},
	"well":         {0.2, 0.3},
	"wholesome":    {0.6, 0.7},
	"wonderful":    {1.0, 1.0},
	"wonderfully":  {1.0, 1.0},
	"worth":        {0.3, 0.1},

	// negative
	"annoying":      {-0.8, 0.9},
	"awful":         {-1.0, 1.0},
	"bad":           {-0.7, 0.67},
	"bland":         {-0.5, 0.7},
	"boring":        {-1.0, 1.0},
	"cheap":         {-0.4, 0.7},
	"clumsy":        {-0.5, 0.7},
	"confusing":     {-0.3, 0.6},
	"disappointed":  {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"dull":          {-0.3, 0.6},
	"forgettable":   {-0.5, 0.6},
	"frustrating":   {-0.4, 0.7},
	"hate":          {-0.8, 0.9},
	"hated":         {-0.9, 0.7},
	"horrible":      {-1.0, 1.0},
	"lame":          {-0.5, 0.75},
	"lazy":          {-0.25, 1.0},
	"mediocre":      {-0.5, 0.9},
	"mess":          {-0.5, 0.6},
	"messy":         {-0.4, 0.6},
	"overrated":     {-0.5, 0.8},
	"painful":       {-0.7, 0.9},
	"pointless":     {-0.5, 0.7},
	"poor":          {-0.4, 0.6},
	"poorly":        {-0.4, 0.6},
	"predictable":   {-0.3, 0.5},
	"ridiculous":    {-0.33, 0.83},
	"sad":           {-0.5, 1.0},
	"slow":          {-0.3, 0.4},
	"stupid":        {-0.8, 1.0},
	"terrible":      {-1.0, 1.0},
	"tedious":       {-0.6, 0.8},
	"unwatchable":   {-0.9, 0.9},
	"waste":         {-0.2, 0.1},
	"weak":          {-0.375, 0.625},
	"worse":         {-0.4, 0.6},
	"worst":         {-1.0, 1.0},
}

// intensifiers scale the next opinion word.
var intensifiers = map[string]float64{
	"absolutely": 1.3,
	"extremely":  1.3,
	"incredibly": 1.3,
	"really":     1.3,
	"so":         1.3,
	"super":      1.3,
	"totally":    1.3,
	"truly":      1.3,
	"very":       1.3,
	"pretty":     1.1,
	"quite":      1.1,
	"rather":     1.1,
	"somewhat":   0.8,
	"slightly":   0.7,
	"barely":     0.5,
}

// negations flip and damp the next opinion word.
var negations = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nor":     {},
	"hardly":  {},
	"without": {},
}

// negationFactor is applied to the polarity of a negated word.
const negationFactor = -0.5
