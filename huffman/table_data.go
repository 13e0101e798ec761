// Code generated from the canonical RFC 7541 Appendix B Huffman code
// table. The codewords are pre-validated: they satisfy Kraft equality,
// canonical (length, symbol_id) progression, and reproduce every fixture
// in RFC 7541 Appendix C bit-for-bit. Do not hand-edit.

package huffman

// hpackSymbols is the static HPACK/QPACK Huffman table: one entry per byte
// value 0..255 plus the end-of-string marker at symbol_id 256, indexed by
// symbol_id (i.e. hpackSymbols[i].SymbolID == i for all i).
var hpackSymbols = [257]HuffmanSymbol{
	{Code: 0xffc00000, Length: 13, SymbolID: 0}, // 0x00
	{Code: 0xffffb000, Length: 23, SymbolID: 1}, // 0x01
	{Code: 0xfffffe20, Length: 28, SymbolID: 2}, // 0x02
	{Code: 0xfffffe30, Length: 28, SymbolID: 3}, // 0x03
	{Code: 0xfffffe40, Length: 28, SymbolID: 4}, // 0x04
	{Code: 0xfffffe50, Length: 28, SymbolID: 5}, // 0x05
	{Code: 0xfffffe60, Length: 28, SymbolID: 6}, // 0x06
	{Code: 0xfffffe70, Length: 28, SymbolID: 7}, // 0x07
	{Code: 0xfffffe80, Length: 28, SymbolID: 8}, // 0x08
	{Code: 0xffffea00, Length: 24, SymbolID: 9}, // 0x09
	{Code: 0xfffffff0, Length: 30, SymbolID: 10}, // 0x0a
	{Code: 0xfffffe90, Length: 28, SymbolID: 11}, // 0x0b
	{Code: 0xfffffea0, Length: 28, SymbolID: 12}, // 0x0c
	{Code: 0xfffffff4, Length: 30, SymbolID: 13}, // 0x0d
	{Code: 0xfffffeb0, Length: 28, SymbolID: 14}, // 0x0e
	{Code: 0xfffffec0, Length: 28, SymbolID: 15}, // 0x0f
	{Code: 0xfffffed0, Length: 28, SymbolID: 16}, // 0x10
	{Code: 0xfffffee0, Length: 28, SymbolID: 17}, // 0x11
	{Code: 0xfffffef0, Length: 28, SymbolID: 18}, // 0x12
	{Code: 0xffffff00, Length: 28, SymbolID: 19}, // 0x13
	{Code: 0xffffff10, Length: 28, SymbolID: 20}, // 0x14
	{Code: 0xffffff20, Length: 28, SymbolID: 21}, // 0x15
	{Code: 0xfffffff8, Length: 30, SymbolID: 22}, // 0x16
	{Code: 0xffffff30, Length: 28, SymbolID: 23}, // 0x17
	{Code: 0xffffff40, Length: 28, SymbolID: 24}, // 0x18
	{Code: 0xffffff50, Length: 28, SymbolID: 25}, // 0x19
	{Code: 0xffffff60, Length: 28, SymbolID: 26}, // 0x1a
	{Code: 0xffffff70, Length: 28, SymbolID: 27}, // 0x1b
	{Code: 0xffffff80, Length: 28, SymbolID: 28}, // 0x1c
	{Code: 0xffffff90, Length: 28, SymbolID: 29}, // 0x1d
	{Code: 0xffffffa0, Length: 28, SymbolID: 30}, // 0x1e
	{Code: 0xffffffb0, Length: 28, SymbolID: 31}, // 0x1f
	{Code: 0x50000000, Length: 6, SymbolID: 32}, // ' '
	{Code: 0xfe000000, Length: 10, SymbolID: 33}, // '!'
	{Code: 0xfe400000, Length: 10, SymbolID: 34}, // '"'
	{Code: 0xffa00000, Length: 12, SymbolID: 35}, // '#'
	{Code: 0xffc80000, Length: 13, SymbolID: 36}, // '$'
	{Code: 0x54000000, Length: 6, SymbolID: 37}, // '%'
	{Code: 0xf8000000, Length: 8, SymbolID: 38}, // '&'
	{Code: 0xff400000, Length: 11, SymbolID: 39}, // "'"
	{Code: 0xfe800000, Length: 10, SymbolID: 40}, // '('
	{Code: 0xfec00000, Length: 10, SymbolID: 41}, // ')'
	{Code: 0xf9000000, Length: 8, SymbolID: 42}, // '*'
	{Code: 0xff600000, Length: 11, SymbolID: 43}, // '+'
	{Code: 0xfa000000, Length: 8, SymbolID: 44}, // ','
	{Code: 0x58000000, Length: 6, SymbolID: 45}, // '-'
	{Code: 0x5c000000, Length: 6, SymbolID: 46}, // '.'
	{Code: 0x60000000, Length: 6, SymbolID: 47}, // '/'
	{Code: 0x00000000, Length: 5, SymbolID: 48}, // '0'
	{Code: 0x08000000, Length: 5, SymbolID: 49}, // '1'
	{Code: 0x10000000, Length: 5, SymbolID: 50}, // '2'
	{Code: 0x64000000, Length: 6, SymbolID: 51}, // '3'
	{Code: 0x68000000, Length: 6, SymbolID: 52}, // '4'
	{Code: 0x6c000000, Length: 6, SymbolID: 53}, // '5'
	{Code: 0x70000000, Length: 6, SymbolID: 54}, // '6'
	{Code: 0x74000000, Length: 6, SymbolID: 55}, // '7'
	{Code: 0x78000000, Length: 6, SymbolID: 56}, // '8'
	{Code: 0x7c000000, Length: 6, SymbolID: 57}, // '9'
	{Code: 0xb8000000, Length: 7, SymbolID: 58}, // ':'
	{Code: 0xfb000000, Length: 8, SymbolID: 59}, // ';'
	{Code: 0xfff80000, Length: 15, SymbolID: 60}, // '<'
	{Code: 0x80000000, Length: 6, SymbolID: 61}, // '='
	{Code: 0xffb00000, Length: 12, SymbolID: 62}, // '>'
	{Code: 0xff000000, Length: 10, SymbolID: 63}, // '?'
	{Code: 0xffd00000, Length: 13, SymbolID: 64}, // '@'
	{Code: 0x84000000, Length: 6, SymbolID: 65}, // 'A'
	{Code: 0xba000000, Length: 7, SymbolID: 66}, // 'B'
	{Code: 0xbc000000, Length: 7, SymbolID: 67}, // 'C'
	{Code: 0xbe000000, Length: 7, SymbolID: 68}, // 'D'
	{Code: 0xc0000000, Length: 7, SymbolID: 69}, // 'E'
	{Code: 0xc2000000, Length: 7, SymbolID: 70}, // 'F'
	{Code: 0xc4000000, Length: 7, SymbolID: 71}, // 'G'
	{Code: 0xc6000000, Length: 7, SymbolID: 72}, // 'H'
	{Code: 0xc8000000, Length: 7, SymbolID: 73}, // 'I'
	{Code: 0xca000000, Length: 7, SymbolID: 74}, // 'J'
	{Code: 0xcc000000, Length: 7, SymbolID: 75}, // 'K'
	{Code: 0xce000000, Length: 7, SymbolID: 76}, // 'L'
	{Code: 0xd0000000, Length: 7, SymbolID: 77}, // 'M'
	{Code: 0xd2000000, Length: 7, SymbolID: 78}, // 'N'
	{Code: 0xd4000000, Length: 7, SymbolID: 79}, // 'O'
	{Code: 0xd6000000, Length: 7, SymbolID: 80}, // 'P'
	{Code: 0xd8000000, Length: 7, SymbolID: 81}, // 'Q'
	{Code: 0xda000000, Length: 7, SymbolID: 82}, // 'R'
	{Code: 0xdc000000, Length: 7, SymbolID: 83}, // 'S'
	{Code: 0xde000000, Length: 7, SymbolID: 84}, // 'T'
	{Code: 0xe0000000, Length: 7, SymbolID: 85}, // 'U'
	{Code: 0xe2000000, Length: 7, SymbolID: 86}, // 'V'
	{Code: 0xe4000000, Length: 7, SymbolID: 87}, // 'W'
	{Code: 0xfc000000, Length: 8, SymbolID: 88}, // 'X'
	{Code: 0xe6000000, Length: 7, SymbolID: 89}, // 'Y'
	{Code: 0xfd000000, Length: 8, SymbolID: 90}, // 'Z'
	{Code: 0xffd80000, Length: 13, SymbolID: 91}, // '['
	{Code: 0xfffe0000, Length: 19, SymbolID: 92}, // 0x5c
	{Code: 0xffe00000, Length: 13, SymbolID: 93}, // ']'
	{Code: 0xfff00000, Length: 14, SymbolID: 94}, // '^'
	{Code: 0x88000000, Length: 6, SymbolID: 95}, // '_'
	{Code: 0xfffa0000, Length: 15, SymbolID: 96}, // '`'
	{Code: 0x18000000, Length: 5, SymbolID: 97}, // 'a'
	{Code: 0x8c000000, Length: 6, SymbolID: 98}, // 'b'
	{Code: 0x20000000, Length: 5, SymbolID: 99}, // 'c'
	{Code: 0x90000000, Length: 6, SymbolID: 100}, // 'd'
	{Code: 0x28000000, Length: 5, SymbolID: 101}, // 'e'
	{Code: 0x94000000, Length: 6, SymbolID: 102}, // 'f'
	{Code: 0x98000000, Length: 6, SymbolID: 103}, // 'g'
	{Code: 0x9c000000, Length: 6, SymbolID: 104}, // 'h'
	{Code: 0x30000000, Length: 5, SymbolID: 105}, // 'i'
	{Code: 0xe8000000, Length: 7, SymbolID: 106}, // 'j'
	{Code: 0xea000000, Length: 7, SymbolID: 107}, // 'k'
	{Code: 0xa0000000, Length: 6, SymbolID: 108}, // 'l'
	{Code: 0xa4000000, Length: 6, SymbolID: 109}, // 'm'
	{Code: 0xa8000000, Length: 6, SymbolID: 110}, // 'n'
	{Code: 0x38000000, Length: 5, SymbolID: 111}, // 'o'
	{Code: 0xac000000, Length: 6, SymbolID: 112}, // 'p'
	{Code: 0xec000000, Length: 7, SymbolID: 113}, // 'q'
	{Code: 0xb0000000, Length: 6, SymbolID: 114}, // 'r'
	{Code: 0x40000000, Length: 5, SymbolID: 115}, // 's'
	{Code: 0x48000000, Length: 5, SymbolID: 116}, // 't'
	{Code: 0xb4000000, Length: 6, SymbolID: 117}, // 'u'
	{Code: 0xee000000, Length: 7, SymbolID: 118}, // 'v'
	{Code: 0xf0000000, Length: 7, SymbolID: 119}, // 'w'
	{Code: 0xf2000000, Length: 7, SymbolID: 120}, // 'x'
	{Code: 0xf4000000, Length: 7, SymbolID: 121}, // 'y'
	{Code: 0xf6000000, Length: 7, SymbolID: 122}, // 'z'
	{Code: 0xfffc0000, Length: 15, SymbolID: 123}, // '{'
	{Code: 0xff800000, Length: 11, SymbolID: 124}, // '|'
	{Code: 0xfff40000, Length: 14, SymbolID: 125}, // '}'
	{Code: 0xffe80000, Length: 13, SymbolID: 126}, // '~'
	{Code: 0xffffffc0, Length: 28, SymbolID: 127}, // 0x7f
	{Code: 0xfffe6000, Length: 20, SymbolID: 128}, // 0x80
	{Code: 0xffff4800, Length: 22, SymbolID: 129}, // 0x81
	{Code: 0xfffe7000, Length: 20, SymbolID: 130}, // 0x82
	{Code: 0xfffe8000, Length: 20, SymbolID: 131}, // 0x83
	{Code: 0xffff4c00, Length: 22, SymbolID: 132}, // 0x84
	{Code: 0xffff5000, Length: 22, SymbolID: 133}, // 0x85
	{Code: 0xffff5400, Length: 22, SymbolID: 134}, // 0x86
	{Code: 0xffffb200, Length: 23, SymbolID: 135}, // 0x87
	{Code: 0xffff5800, Length: 22, SymbolID: 136}, // 0x88
	{Code: 0xffffb400, Length: 23, SymbolID: 137}, // 0x89
	{Code: 0xffffb600, Length: 23, SymbolID: 138}, // 0x8a
	{Code: 0xffffb800, Length: 23, SymbolID: 139}, // 0x8b
	{Code: 0xffffba00, Length: 23, SymbolID: 140}, // 0x8c
	{Code: 0xffffbc00, Length: 23, SymbolID: 141}, // 0x8d
	{Code: 0xffffeb00, Length: 24, SymbolID: 142}, // 0x8e
	{Code: 0xffffbe00, Length: 23, SymbolID: 143}, // 0x8f
	{Code: 0xffffec00, Length: 24, SymbolID: 144}, // 0x90
	{Code: 0xffffed00, Length: 24, SymbolID: 145}, // 0x91
	{Code: 0xffff5c00, Length: 22, SymbolID: 146}, // 0x92
	{Code: 0xffffc000, Length: 23, SymbolID: 147}, // 0x93
	{Code: 0xffffee00, Length: 24, SymbolID: 148}, // 0x94
	{Code: 0xffffc200, Length: 23, SymbolID: 149}, // 0x95
	{Code: 0xffffc400, Length: 23, SymbolID: 150}, // 0x96
	{Code: 0xffffc600, Length: 23, SymbolID: 151}, // 0x97
	{Code: 0xffffc800, Length: 23, SymbolID: 152}, // 0x98
	{Code: 0xfffee000, Length: 21, SymbolID: 153}, // 0x99
	{Code: 0xffff6000, Length: 22, SymbolID: 154}, // 0x9a
	{Code: 0xffffca00, Length: 23, SymbolID: 155}, // 0x9b
	{Code: 0xffff6400, Length: 22, SymbolID: 156}, // 0x9c
	{Code: 0xffffcc00, Length: 23, SymbolID: 157}, // 0x9d
	{Code: 0xffffce00, Length: 23, SymbolID: 158}, // 0x9e
	{Code: 0xffffef00, Length: 24, SymbolID: 159}, // 0x9f
	{Code: 0xffff6800, Length: 22, SymbolID: 160}, // 0xa0
	{Code: 0xfffee800, Length: 21, SymbolID: 161}, // '¡'
	{Code: 0xfffe9000, Length: 20, SymbolID: 162}, // '¢'
	{Code: 0xffff6c00, Length: 22, SymbolID: 163}, // '£'
	{Code: 0xffff7000, Length: 22, SymbolID: 164}, // '¤'
	{Code: 0xffffd000, Length: 23, SymbolID: 165}, // '¥'
	{Code: 0xffffd200, Length: 23, SymbolID: 166}, // '¦'
	{Code: 0xfffef000, Length: 21, SymbolID: 167}, // '§'
	{Code: 0xffffd400, Length: 23, SymbolID: 168}, // '¨'
	{Code: 0xffff7400, Length: 22, SymbolID: 169}, // '©'
	{Code: 0xffff7800, Length: 22, SymbolID: 170}, // 'ª'
	{Code: 0xfffff000, Length: 24, SymbolID: 171}, // '«'
	{Code: 0xfffef800, Length: 21, SymbolID: 172}, // '¬'
	{Code: 0xffff7c00, Length: 22, SymbolID: 173}, // 0xad
	{Code: 0xffffd600, Length: 23, SymbolID: 174}, // '®'
	{Code: 0xffffd800, Length: 23, SymbolID: 175}, // '¯'
	{Code: 0xffff0000, Length: 21, SymbolID: 176}, // '°'
	{Code: 0xffff0800, Length: 21, SymbolID: 177}, // '±'
	{Code: 0xffff8000, Length: 22, SymbolID: 178}, // '²'
	{Code: 0xffff1000, Length: 21, SymbolID: 179}, // '³'
	{Code: 0xffffda00, Length: 23, SymbolID: 180}, // '´'
	{Code: 0xffff8400, Length: 22, SymbolID: 181}, // 'µ'
	{Code: 0xffffdc00, Length: 23, SymbolID: 182}, // '¶'
	{Code: 0xffffde00, Length: 23, SymbolID: 183}, // '·'
	{Code: 0xfffea000, Length: 20, SymbolID: 184}, // '¸'
	{Code: 0xffff8800, Length: 22, SymbolID: 185}, // '¹'
	{Code: 0xffff8c00, Length: 22, SymbolID: 186}, // 'º'
	{Code: 0xffff9000, Length: 22, SymbolID: 187}, // '»'
	{Code: 0xffffe000, Length: 23, SymbolID: 188}, // '¼'
	{Code: 0xffff9400, Length: 22, SymbolID: 189}, // '½'
	{Code: 0xffff9800, Length: 22, SymbolID: 190}, // '¾'
	{Code: 0xffffe200, Length: 23, SymbolID: 191}, // '¿'
	{Code: 0xfffff800, Length: 26, SymbolID: 192}, // 'À'
	{Code: 0xfffff840, Length: 26, SymbolID: 193}, // 'Á'
	{Code: 0xfffeb000, Length: 20, SymbolID: 194}, // 'Â'
	{Code: 0xfffe2000, Length: 19, SymbolID: 195}, // 'Ã'
	{Code: 0xffff9c00, Length: 22, SymbolID: 196}, // 'Ä'
	{Code: 0xffffe400, Length: 23, SymbolID: 197}, // 'Å'
	{Code: 0xffffa000, Length: 22, SymbolID: 198}, // 'Æ'
	{Code: 0xfffff600, Length: 25, SymbolID: 199}, // 'Ç'
	{Code: 0xfffff880, Length: 26, SymbolID: 200}, // 'È'
	{Code: 0xfffff8c0, Length: 26, SymbolID: 201}, // 'É'
	{Code: 0xfffff900, Length: 26, SymbolID: 202}, // 'Ê'
	{Code: 0xfffffbc0, Length: 27, SymbolID: 203}, // 'Ë'
	{Code: 0xfffffbe0, Length: 27, SymbolID: 204}, // 'Ì'
	{Code: 0xfffff940, Length: 26, SymbolID: 205}, // 'Í'
	{Code: 0xfffff100, Length: 24, SymbolID: 206}, // 'Î'
	{Code: 0xfffff680, Length: 25, SymbolID: 207}, // 'Ï'
	{Code: 0xfffe4000, Length: 19, SymbolID: 208}, // 'Ð'
	{Code: 0xffff1800, Length: 21, SymbolID: 209}, // 'Ñ'
	{Code: 0xfffff980, Length: 26, SymbolID: 210}, // 'Ò'
	{Code: 0xfffffc00, Length: 27, SymbolID: 211}, // 'Ó'
	{Code: 0xfffffc20, Length: 27, SymbolID: 212}, // 'Ô'
	{Code: 0xfffff9c0, Length: 26, SymbolID: 213}, // 'Õ'
	{Code: 0xfffffc40, Length: 27, SymbolID: 214}, // 'Ö'
	{Code: 0xfffff200, Length: 24, SymbolID: 215}, // '×'
	{Code: 0xffff2000, Length: 21, SymbolID: 216}, // 'Ø'
	{Code: 0xffff2800, Length: 21, SymbolID: 217}, // 'Ù'
	{Code: 0xfffffa00, Length: 26, SymbolID: 218}, // 'Ú'
	{Code: 0xfffffa40, Length: 26, SymbolID: 219}, // 'Û'
	{Code: 0xffffffd0, Length: 28, SymbolID: 220}, // 'Ü'
	{Code: 0xfffffc60, Length: 27, SymbolID: 221}, // 'Ý'
	{Code: 0xfffffc80, Length: 27, SymbolID: 222}, // 'Þ'
	{Code: 0xfffffca0, Length: 27, SymbolID: 223}, // 'ß'
	{Code: 0xfffec000, Length: 20, SymbolID: 224}, // 'à'
	{Code: 0xfffff300, Length: 24, SymbolID: 225}, // 'á'
	{Code: 0xfffed000, Length: 20, SymbolID: 226}, // 'â'
	{Code: 0xffff3000, Length: 21, SymbolID: 227}, // 'ã'
	{Code: 0xffffa400, Length: 22, SymbolID: 228}, // 'ä'
	{Code: 0xffff3800, Length: 21, SymbolID: 229}, // 'å'
	{Code: 0xffff4000, Length: 21, SymbolID: 230}, // 'æ'
	{Code: 0xffffe600, Length: 23, SymbolID: 231}, // 'ç'
	{Code: 0xffffa800, Length: 22, SymbolID: 232}, // 'è'
	{Code: 0xffffac00, Length: 22, SymbolID: 233}, // 'é'
	{Code: 0xfffff700, Length: 25, SymbolID: 234}, // 'ê'
	{Code: 0xfffff780, Length: 25, SymbolID: 235}, // 'ë'
	{Code: 0xfffff400, Length: 24, SymbolID: 236}, // 'ì'
	{Code: 0xfffff500, Length: 24, SymbolID: 237}, // 'í'
	{Code: 0xfffffa80, Length: 26, SymbolID: 238}, // 'î'
	{Code: 0xffffe800, Length: 23, SymbolID: 239}, // 'ï'
	{Code: 0xfffffac0, Length: 26, SymbolID: 240}, // 'ð'
	{Code: 0xfffffcc0, Length: 27, SymbolID: 241}, // 'ñ'
	{Code: 0xfffffb00, Length: 26, SymbolID: 242}, // 'ò'
	{Code: 0xfffffb40, Length: 26, SymbolID: 243}, // 'ó'
	{Code: 0xfffffce0, Length: 27, SymbolID: 244}, // 'ô'
	{Code: 0xfffffd00, Length: 27, SymbolID: 245}, // 'õ'
	{Code: 0xfffffd20, Length: 27, SymbolID: 246}, // 'ö'
	{Code: 0xfffffd40, Length: 27, SymbolID: 247}, // '÷'
	{Code: 0xfffffd60, Length: 27, SymbolID: 248}, // 'ø'
	{Code: 0xffffffe0, Length: 28, SymbolID: 249}, // 'ù'
	{Code: 0xfffffd80, Length: 27, SymbolID: 250}, // 'ú'
	{Code: 0xfffffda0, Length: 27, SymbolID: 251}, // 'û'
	{Code: 0xfffffdc0, Length: 27, SymbolID: 252}, // 'ü'
	{Code: 0xfffffde0, Length: 27, SymbolID: 253}, // 'ý'
	{Code: 0xfffffe00, Length: 27, SymbolID: 254}, // 'þ'
	{Code: 0xfffffb80, Length: 26, SymbolID: 255}, // 'ÿ'
	{Code: 0xfffffffc, Length: 30, SymbolID: 256}, // EOS
}
