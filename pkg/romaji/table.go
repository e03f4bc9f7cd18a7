package romaji

// entry is one row of the built-in romanization table: roman maps to
// hiragana, consuming len(roman)-remain input characters and re-feeding
// the trailing remain characters to the next match (used for geminate
// consonants, e.g. "tt" -> "っ" with remain=1 re-feeds the following
// consonant+vowel).
type entry struct {
	roman    string
	hiragana string
	remain   int
}

// romanEntries is the complete built-in romaji -> hiragana table.
var romanEntries = []entry{
	{"-", "ー", 0}, {"~", "〜", 0}, {".", "。", 0}, {",", "、", 0},
	{"z/", "・", 0}, {"z.", "…", 0}, {"z,", "‥", 0}, {"zh", "←", 0},
	{"zj", "↓", 0}, {"zk", "↑", 0}, {"zl", "→", 0}, {"z-", "〜", 0},
	{"z[", "『", 0}, {"z]", "』", 0}, {"[", "「", 0}, {"]", "」", 0},

	{"va", "ゔぁ", 0}, {"vi", "ゔぃ", 0}, {"vu", "ゔ", 0}, {"ve", "ゔぇ", 0},
	{"vo", "ゔぉ", 0}, {"vya", "ゔゃ", 0}, {"vyi", "ゔぃ", 0}, {"vyu", "ゔゅ", 0},
	{"vye", "ゔぇ", 0}, {"vyo", "ゔょ", 0},

	{"qq", "っ", 1}, {"vv", "っ", 1}, {"ll", "っ", 1}, {"xx", "っ", 1}, {"kk", "っ", 1},
	{"gg", "っ", 1}, {"ss", "っ", 1}, {"zz", "っ", 1}, {"jj", "っ", 1}, {"tt", "っ", 1},
	{"dd", "っ", 1}, {"hh", "っ", 1}, {"ff", "っ", 1}, {"bb", "っ", 1}, {"pp", "っ", 1},
	{"mm", "っ", 1}, {"yy", "っ", 1}, {"rr", "っ", 1}, {"ww", "っ", 1},

	{"www", "w", 2},

	{"cc", "っ", 1},

	{"kya", "きゃ", 0}, {"kyi", "きぃ", 0}, {"kyu", "きゅ", 0}, {"kye", "きぇ", 0}, {"kyo", "きょ", 0},
	{"gya", "ぎゃ", 0}, {"gyi", "ぎぃ", 0}, {"gyu", "ぎゅ", 0}, {"gye", "ぎぇ", 0}, {"gyo", "ぎょ", 0},
	{"sya", "しゃ", 0}, {"syi", "しぃ", 0}, {"syu", "しゅ", 0}, {"sye", "しぇ", 0}, {"syo", "しょ", 0},
	{"sha", "しゃ", 0}, {"shi", "し", 0}, {"shu", "しゅ", 0}, {"she", "しぇ", 0}, {"sho", "しょ", 0},
	{"zya", "じゃ", 0}, {"zyi", "じぃ", 0}, {"zyu", "じゅ", 0}, {"zye", "じぇ", 0}, {"zyo", "じょ", 0},
	{"tya", "ちゃ", 0}, {"tyi", "ちぃ", 0}, {"tyu", "ちゅ", 0}, {"tye", "ちぇ", 0}, {"tyo", "ちょ", 0},
	{"cha", "ちゃ", 0}, {"chi", "ち", 0}, {"chu", "ちゅ", 0}, {"che", "ちぇ", 0}, {"cho", "ちょ", 0},
	{"cya", "ちゃ", 0}, {"cyi", "ちぃ", 0}, {"cyu", "ちゅ", 0}, {"cye", "ちぇ", 0}, {"cyo", "ちょ", 0},
	{"dya", "ぢゃ", 0}, {"dyi", "ぢぃ", 0}, {"dyu", "ぢゅ", 0}, {"dye", "ぢぇ", 0}, {"dyo", "ぢょ", 0},
	{"tsa", "つぁ", 0}, {"tsi", "つぃ", 0}, {"tse", "つぇ", 0}, {"tso", "つぉ", 0},
	{"tha", "てゃ", 0}, {"thi", "てぃ", 0}, {"t'i", "てぃ", 0}, {"thu", "てゅ", 0}, {"the", "てぇ", 0}, {"tho", "てょ", 0}, {"t'yu", "てゅ", 0},
	{"dha", "でゃ", 0}, {"dhi", "でぃ", 0}, {"d'i", "でぃ", 0}, {"dhu", "でゅ", 0}, {"dhe", "でぇ", 0}, {"dho", "でょ", 0}, {"d'yu", "でゅ", 0},
	{"twa", "とぁ", 0}, {"twi", "とぃ", 0}, {"twu", "とぅ", 0}, {"twe", "とぇ", 0}, {"two", "とぉ", 0}, {"t'u", "とぅ", 0},
	{"dwa", "どぁ", 0}, {"dwi", "どぃ", 0}, {"dwu", "どぅ", 0}, {"dwe", "どぇ", 0}, {"dwo", "どぉ", 0}, {"d'u", "どぅ", 0},
	{"nya", "にゃ", 0}, {"nyi", "にぃ", 0}, {"nyu", "にゅ", 0}, {"nye", "にぇ", 0}, {"nyo", "にょ", 0},
	{"hya", "ひゃ", 0}, {"hyi", "ひぃ", 0}, {"hyu", "ひゅ", 0}, {"hye", "ひぇ", 0}, {"hyo", "ひょ", 0},
	{"bya", "びゃ", 0}, {"byi", "びぃ", 0}, {"byu", "びゅ", 0}, {"bye", "びぇ", 0}, {"byo", "びょ", 0},
	{"pya", "ぴゃ", 0}, {"pyi", "ぴぃ", 0}, {"pyu", "ぴゅ", 0}, {"pye", "ぴぇ", 0}, {"pyo", "ぴょ", 0},

	{"fa", "ふぁ", 0}, {"fi", "ふぃ", 0}, {"fu", "ふ", 0}, {"fe", "ふぇ", 0}, {"fo", "ふぉ", 0},
	{"fya", "ふゃ", 0}, {"fyu", "ふゅ", 0}, {"fyo", "ふょ", 0},
	{"hwa", "ふぁ", 0}, {"hwi", "ふぃ", 0}, {"hwe", "ふぇ", 0}, {"hwo", "ふぉ", 0}, {"hwyu", "ふゅ", 0},

	{"mya", "みゃ", 0}, {"myi", "みぃ", 0}, {"myu", "みゅ", 0}, {"mye", "みぇ", 0}, {"myo", "みょ", 0},
	{"rya", "りゃ", 0}, {"ryi", "りぃ", 0}, {"ryu", "りゅ", 0}, {"rye", "りぇ", 0}, {"ryo", "りょ", 0},

	{"n'", "ん", 0}, {"nn", "ん", 0}, {"n", "ん", 0}, {"xn", "ん", 0},

	{"a", "あ", 0}, {"i", "い", 0}, {"u", "う", 0}, {"wu", "う", 0}, {"e", "え", 0}, {"o", "お", 0},
	{"xa", "ぁ", 0}, {"xi", "ぃ", 0}, {"xu", "ぅ", 0}, {"xe", "ぇ", 0}, {"xo", "ぉ", 0},
	{"la", "ぁ", 0}, {"li", "ぃ", 0}, {"lu", "ぅ", 0}, {"le", "ぇ", 0}, {"lo", "ぉ", 0},
	{"lyi", "ぃ", 0}, {"xyi", "ぃ", 0}, {"lye", "ぇ", 0}, {"xye", "ぇ", 0},

	{"ye", "いぇ", 0},

	{"ka", "か", 0}, {"ki", "き", 0}, {"ku", "く", 0}, {"ke", "け", 0}, {"ko", "こ", 0},
	{"xka", "ヵ", 0}, {"xke", "ヶ", 0}, {"lka", "ヵ", 0}, {"lke", "ヶ", 0},
	{"ga", "が", 0}, {"gi", "ぎ", 0}, {"gu", "ぐ", 0}, {"ge", "げ", 0}, {"go", "ご", 0},
	{"sa", "さ", 0}, {"si", "し", 0}, {"su", "す", 0}, {"se", "せ", 0}, {"so", "そ", 0},
	{"ca", "か", 0}, {"ci", "し", 0}, {"cu", "く", 0}, {"ce", "せ", 0}, {"co", "こ", 0},
	{"qa", "くぁ", 0}, {"qi", "くぃ", 0}, {"qu", "く", 0}, {"qe", "くぇ", 0}, {"qo", "くぉ", 0},
	{"kwa", "くぁ", 0}, {"kwi", "くぃ", 0}, {"kwu", "くぅ", 0}, {"kwe", "くぇ", 0}, {"kwo", "くぉ", 0},
	{"gwa", "ぐぁ", 0}, {"gwi", "ぐぃ", 0}, {"gwu", "ぐぅ", 0}, {"gwe", "ぐぇ", 0}, {"gwo", "ぐぉ", 0},
	{"za", "ざ", 0}, {"zi", "じ", 0}, {"zu", "ず", 0}, {"ze", "ぜ", 0}, {"zo", "ぞ", 0},
	{"ja", "じゃ", 0}, {"ji", "じ", 0}, {"ju", "じゅ", 0}, {"je", "じぇ", 0}, {"jo", "じょ", 0},
	{"jya", "じゃ", 0}, {"jyi", "じぃ", 0}, {"jyu", "じゅ", 0}, {"jye", "じぇ", 0}, {"jyo", "じょ", 0},
	{"ta", "た", 0}, {"ti", "ち", 0}, {"tu", "つ", 0}, {"tsu", "つ", 0}, {"te", "て", 0}, {"to", "と", 0},
	{"da", "だ", 0}, {"di", "ぢ", 0}, {"du", "づ", 0}, {"de", "で", 0}, {"do", "ど", 0},
	{"xtu", "っ", 0}, {"xtsu", "っ", 0}, {"ltu", "っ", 0}, {"ltsu", "っ", 0},
	{"na", "な", 0}, {"ni", "に", 0}, {"nu", "ぬ", 0}, {"ne", "ね", 0}, {"no", "の", 0},
	{"ha", "は", 0}, {"hi", "ひ", 0}, {"hu", "ふ", 0}, {"he", "へ", 0}, {"ho", "ほ", 0},
	{"ba", "ば", 0}, {"bi", "び", 0}, {"bu", "ぶ", 0}, {"be", "べ", 0}, {"bo", "ぼ", 0},
	{"pa", "ぱ", 0}, {"pi", "ぴ", 0}, {"pu", "ぷ", 0}, {"pe", "ぺ", 0}, {"po", "ぽ", 0},
	{"ma", "ま", 0}, {"mi", "み", 0}, {"mu", "む", 0}, {"me", "め", 0}, {"mo", "も", 0},

	{"xya", "ゃ", 0}, {"lya", "ゃ", 0}, {"ya", "や", 0},
	{"wyi", "ゐ", 0},
	{"xyu", "ゅ", 0}, {"lyu", "ゅ", 0}, {"yu", "ゆ", 0},
	{"wye", "ゑ", 0},
	{"xyo", "ょ", 0}, {"lyo", "ょ", 0}, {"yo", "よ", 0},

	{"ra", "ら", 0}, {"ri", "り", 0}, {"ru", "る", 0}, {"re", "れ", 0}, {"ro", "ろ", 0},

	{"xwa", "ゎ", 0}, {"lwa", "ゎ", 0}, {"wa", "わ", 0},
	{"wi", "うぃ", 0}, {"we", "うぇ", 0}, {"wo", "を", 0},
	{"wha", "うぁ", 0}, {"whi", "うぃ", 0}, {"whu", "う", 0}, {"whe", "うぇ", 0}, {"who", "うぉ", 0},
}
