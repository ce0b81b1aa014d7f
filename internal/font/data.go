package font

// packed is the built-in 8x8 glyph sheet for ASCII 32..127, 16 glyphs per
// row and 6 rows, in the 6-bits-per-character encoding read by Decode.
// Glyph 127 is drawn as a hollow box.
const packed = "" +
	"00000000?Sh0O01o@E405049GDT05089EDD050097Sh020060000000000000000" +
	"00000000OP00220n2D8055A12GmO55AA2D0055@QOP00O7QN0000000000000000" +
	"00000000Of80O7moBE4324@9BDT014@IBDT314@Y=TH023Q60000000000000000" +
	"00000000?R8BB3PV@D4oE4A9@DTBE4A9@DToE4A98SHB92Pb0000000000000000" +
	"00000000OaPT13P1@A@Z?d@1@A9oA4Ao8WlZA4@1710B87l10000000000000000" +
	"00000000ObLS?3PoBDDC@5A0BDD8@5A0BDET@5A0@CURO1Po0000000000000000" +
	"00000000Oc`f70@?2DY987h`2DUF@0E02DTP80D`0C1@700?0000000000000000" +
	"00000000?P40?0Qo@G40@5@PB@T3<5@HB@D0@5@PNP<0?3ao0000000000000000" +
	"00000000OcH0A7mS24TL:0@D24TR40@824U1:0@DOcH0A7QS0000000000000000" +
	"0000000000H03003@DU1D4@4OdTRD7eh@BTLD40401h0?0030000000000000000" +
	"000000008008A21Q@00ZI41A@B@LE4A9?`0ZC3e50@08A0130000000000000000" +
	"00000000O`0807l02408211o52@n=RQ18P08@DA1@@0800000000000000000000" +
	"00000000O`P00003@1A00444@28POgl8@440040@@000001P0000000000000000" +
	"00000000Oa@807`00Q@8@@A131@8=WQ10Q@820AoOa@807P00000000000000000" +
	"00000000O`0027`40T4010@2129020@121@040@2O`P027P40000000000000000" +
	"00000000?P9POcQ0@@4@@DA0@E48@DA0@@T4@DA0?PH3OcQ00000000000000000"
