package codepage

// CP437 is the IBM PC console codepage with the control range shown as its
// classic symbols and the remaining invisible positions substituted.
var CP437 = mustNew("cp437", [256]rune{
	AltNull, 0x263A, 0x263B, 0x2665, 0x2666, 0x2663, 0x2660, 0x2022, // 00-07
	0x25D8, 0x25CB, 0x25D9, 0x2642, 0x2640, 0x266A, 0x266B, 0x263C, // 08-0F
	0x25BA, 0x25C4, 0x2195, 0x203C, 0x00B6, 0x00A7, 0x25AC, 0x21A8, // 10-17
	0x2191, 0x2193, 0x2192, 0x2190, 0x221F, 0x2194, 0x25B2, 0x25BC, // 18-1F
	AltSpace, '!', '"', '#', '$', '%', '&', '\'', // 20-27
	'(', ')', '*', '+', ',', '-', '.', '/', // 28-2F
	'0', '1', '2', '3', '4', '5', '6', '7', // 30-37
	'8', '9', ':', ';', '<', '=', '>', '?', // 38-3F
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', // 40-47
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', // 48-4F
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', // 50-57
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_', // 58-5F
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', // 60-67
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', // 68-6F
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', // 70-77
	'x', 'y', 'z', '{', '|', '}', '~', AltDelete, // 78-7F
	0x00C7, 0x00FC, 0x00E9, 0x00E2, 0x00E4, 0x00E0, 0x00E5, 0x00E7, // 80-87
	0x00EA, 0x00EB, 0x00E8, 0x00EF, 0x00EE, 0x00EC, 0x00C4, 0x00C5, // 88-8F
	0x00C9, 0x00E6, 0x00C6, 0x00F4, 0x00F6, 0x00F2, 0x00FB, 0x00F9, // 90-97
	0x00FF, 0x00D6, 0x00DC, 0x00A2, 0x00A3, 0x00A5, 0x20A7, 0x0192, // 98-9F
	0x00E1, 0x00ED, 0x00F3, 0x00FA, 0x00F1, 0x00D1, 0x00AA, 0x00BA, // A0-A7
	0x00BF, 0x2310, 0x00AC, 0x00BD, 0x00BC, 0x00A1, 0x00AB, 0x00BB, // A8-AF
	0x2591, 0x2592, 0x2593, 0x2502, 0x2524, 0x2561, 0x2562, 0x2556, // B0-B7
	0x2555, 0x2563, 0x2551, 0x2557, 0x255D, 0x255C, 0x255B, 0x2510, // B8-BF
	0x2514, 0x2534, 0x252C, 0x251C, 0x2500, 0x253C, 0x255E, 0x255F, // C0-C7
	0x255A, 0x2554, 0x2569, 0x2566, 0x2560, 0x2550, 0x256C, 0x2567, // C8-CF
	0x2568, 0x2564, 0x2565, 0x2559, 0x2558, 0x2552, 0x2553, 0x256B, // D0-D7
	0x256A, 0x2518, 0x250C, 0x2588, 0x2584, 0x258C, 0x2590, 0x2580, // D8-DF
	0x03B1, 0x00DF, 0x0393, 0x03C0, 0x03A3, 0x03C3, 0x00B5, 0x03C4, // E0-E7
	0x03A6, 0x0398, 0x03A9, 0x03B4, 0x221E, 0x03C6, 0x03B5, 0x2229, // E8-EF
	0x2261, 0x00B1, 0x2265, 0x2264, 0x2320, 0x2321, 0x00F7, 0x2248, // F0-F7
	0x00B0, 0x2219, 0x00B7, 0x221A, 0x207F, 0x00B2, 0x25A0, AltNBSP, // F8-FF
})

// Positions that are undefined C1 controls in Windows-1252.
const (
	alt81 rune = 0x201B
	alt8D rune = 0x010C
	alt8F rune = 0x017F
	alt90 rune = 0x0111
	alt9D rune = 0x010D
)

// CP1252 is Windows-1252 with Greek letters in the C0 control rows and
// otherwise unused Latin glyphs in the undefined C1 positions.
var CP1252 = mustNew("cp1252", [256]rune{
	AltNull, 0x03B1, 0x03B2, 0x03B3, 0x03B4, 0x03B5, 0x03B6, 0x03B7, // 00-07
	0x03B8, 0x03B9, 0x03BA, 0x03BB, 0x03BC, 0x03BD, 0x03BE, 0x03B0, // 08-0F
	0x03C0, 0x03C1, 0x03C2, 0x03C3, 0x03C4, 0x03C5, 0x03C6, 0x03C7, // 10-17
	0x03C8, 0x03C9, 0x03CA, 0x03CB, 0x03AC, 0x03CD, 0x03CE, 0x03AF, // 18-1F
	AltSpace, '!', '"', '#', '$', '%', '&', '\'', // 20-27
	'(', ')', '*', '+', ',', '-', '.', '/', // 28-2F
	'0', '1', '2', '3', '4', '5', '6', '7', // 30-37
	'8', '9', ':', ';', '<', '=', '>', '?', // 38-3F
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', // 40-47
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', // 48-4F
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', // 50-57
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_', // 58-5F
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', // 60-67
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', // 68-6F
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', // 70-77
	'x', 'y', 'z', '{', '|', '}', '~', AltDelete, // 78-7F
	0x20AC, alt81, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021, // 80-87
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, alt8D, 0x017D, alt8F, // 88-8F
	alt90, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014, // 90-97
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, alt9D, 0x017E, 0x0178, // 98-9F
	AltNBSP, 0x00A1, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6, 0x00A7, // A0-A7
	0x00A8, 0x00A9, 0x00AA, 0x00AB, 0x00AC, AltSoftHyphen, 0x00AE, 0x00AF, // A8-AF
	0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6, 0x00B7, // B0-B7
	0x00B8, 0x00B9, 0x00BA, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF, // B8-BF
	0x00C0, 0x00C1, 0x00C2, 0x00C3, 0x00C4, 0x00C5, 0x00C6, 0x00C7, // C0-C7
	0x00C8, 0x00C9, 0x00CA, 0x00CB, 0x00CC, 0x00CD, 0x00CE, 0x00CF, // C8-CF
	0x00D0, 0x00D1, 0x00D2, 0x00D3, 0x00D4, 0x00D5, 0x00D6, 0x00D7, // D0-D7
	0x00D8, 0x00D9, 0x00DA, 0x00DB, 0x00DC, 0x00DD, 0x00DE, 0x00DF, // D8-DF
	0x00E0, 0x00E1, 0x00E2, 0x00E3, 0x00E4, 0x00E5, 0x00E6, 0x00E7, // E0-E7
	0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x00EC, 0x00ED, 0x00EE, 0x00EF, // E8-EF
	0x00F0, 0x00F1, 0x00F2, 0x00F3, 0x00F4, 0x00F5, 0x00F6, 0x00F7, // F0-F7
	0x00F8, 0x00F9, 0x00FA, 0x00FB, 0x00FC, 0x00FD, 0x00FE, 0x00FF, // F8-FF
})
