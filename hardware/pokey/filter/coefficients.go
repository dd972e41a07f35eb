// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package filter

// coefficient tables for the decimation filters. the tables were designed
// offline and should not be edited by hand

// low pass filter for decimation of 37 to 1. windowed sinc, 881 taps, Kaiser
// window (beta 7.3) with a cutoff of 19kHz at 1.776MHz. the stopband starts
// below 24kHz. normalised to unity gain at DC
var fir48k = []float32{
	-3.1320476e-06, -3.26276313e-06, -3.3755905e-06, -3.46785373e-06, -3.53687096e-06,
	-3.57997556e-06, -3.59453884e-06, -3.57799331e-06, -3.52785605e-06, -3.44175396e-06,
	-3.31744877e-06, -3.15286115e-06, -2.94609754e-06, -2.69547354e-06, -2.39954034e-06,
	-2.05710762e-06, -1.66726795e-06, -1.22941947e-06, -7.43286819e-07, -2.08941884e-07,
	3.73177528e-07, 1.00225088e-06, 1.6770598e-06, 2.39597489e-06, 3.15694547e-06,
	3.95749112e-06, 4.79469554e-06, 5.66520612e-06, 6.56523071e-06, 7.49054334e-06,
	8.43649013e-06, 9.39799884e-06, 1.03695902e-05, 1.13453989e-05, 1.23191885e-05,
	1.32843779e-05, 1.42340659e-05, 1.51610629e-05, 1.60579257e-05, 1.69169907e-05,
	1.77304173e-05, 1.84902274e-05, 1.91883573e-05, 1.98166963e-05, 2.03671498e-05,
	2.08316851e-05, 2.12023861e-05, 2.14715128e-05, 2.1631562e-05, 2.16753215e-05,
	2.15959353e-05, 2.13869625e-05, 2.10424369e-05, 2.05569286e-05, 1.99256028e-05,
	1.91442796e-05, 1.82094936e-05, 1.71185384e-05, 1.58695329e-05, 1.44614614e-05,
	1.28942211e-05, 1.11686695e-05, 9.28665577e-06, 7.25106111e-06, 5.06582364e-06,
	2.73596333e-06, 2.67599717e-07, -2.33203582e-06, -5.05459457e-06, -7.89061141e-06,
	-1.08295135e-05, -1.38596333e-05, -1.69682298e-05, -2.01415241e-05, -2.33647279e-05,
	-2.66220941e-05, -2.98969644e-05, -3.31718329e-05, -3.6428406e-05, -3.96476935e-05,
	-4.28100684e-05, -4.58953655e-05, -4.88829792e-05, -5.1751962e-05, -5.44811264e-05,
	-5.7049172e-05, -5.94347839e-05, -6.16167745e-05, -6.35741962e-05, -6.52864837e-05,
	-6.67335698e-05, -6.78960423e-05, -6.87552456e-05, -6.929347e-05, -6.94940318e-05,
	-6.93414622e-05, -6.88215878e-05, -6.79217046e-05, -6.66306951e-05, -6.49391368e-05,
	-6.28394337e-05, -6.03259214e-05, -5.73949947e-05, -5.40451692e-05, -5.02772018e-05,
	-4.60941483e-05, -4.15014438e-05, -3.65069718e-05, -3.11210824e-05, -2.53566541e-05,
	-1.92291063e-05, -1.27563999e-05, -5.95904385e-06, 1.1399303e-06, 8.51500499e-06,
	1.61382231e-05, 2.39792553e-05, 3.20054787e-05, 4.01820726e-05, 4.84721313e-05,
	5.68367941e-05, 6.52353847e-05, 7.36255533e-05, 8.19634733e-05, 9.02040192e-05,
	9.8300945e-05, 0.000106207117, 0.000113874732, 0.000121255543, 0.000128301122,
	0.000134963077, 0.000141193348, 0.000146944498, 0.000152169887, 0.000156824055,
	0.000160862968, 0.00016424428, 0.000166927624, 0.000168874903, 0.000170050567,
	0.000170421874, 0.000169959167, 0.000168636107, 0.000166429949, 0.000163321776,
	0.000159296702, 0.000154344089, 0.000148457751, 0.000141636119, 0.000133882408,
	0.000125204708, 0.000115616152, 0.00010513499, 9.37846344e-05, 8.15937165e-05,
	6.85960986e-05, 5.48308526e-05, 4.03422346e-05, 2.517959e-05, 9.39727943e-06,
	-6.9454677e-06, -2.37846998e-05, -4.10519388e-05, -5.86743881e-05, -7.65751902e-05,
	-9.46736836e-05, -0.000112885718, -0.00013112399, -0.000149298372, -0.000167316335,
	-0.000185083278, -0.000202503041, -0.000219478316, -0.000235911066, -0.000251703081,
	-0.000266756455, -0.000280974054, -0.000294260069, -0.000306520524, -0.000317663886,
	-0.000327601447, -0.000336248049, -0.000343522406, -0.000349347829, -0.000353652606,
	-0.000356370641, -0.00035744175, -0.000356812321, -0.000354435673, -0.000350272545,
	-0.000344291446, -0.000336469064, -0.000326790585, -0.000315250014, -0.000301850494,
	-0.000286604511, -0.000269534008, -0.000250670681, -0.000230056001, -0.00020774125,
	-0.000183787619, -0.000158266062, -0.0001312573, -0.000102851649, -7.31487889e-05,
	-4.22575577e-05, -1.02956583e-05, 2.26107204e-05, 5.63272843e-05, 9.07121066e-05,
	0.000125616119, 0.000160883646, 0.000196353052, 0.000231857353, 0.00026722491,
	0.000302280183, 0.000336844445, 0.000370736612, 0.000403774116, 0.000435773749,
	0.000466552505, 0.000495928572, 0.00052372209, 0.000549756456, 0.000573858735,
	0.000595861173, 0.000615601719, 0.000632925192, 0.00064768421, 0.000659740006,
	0.000668963417, 0.000675235759, 0.00067844952, 0.000678509474, 0.000675333198,
	0.000668851833, 0.000659010897, 0.00064577075, 0.000629107235, 0.000609012204,
	0.000585493864, 0.000558577303, 0.000528304605, 0.000494735141, 0.000457945716,
	0.000418030715, 0.000375101867, 0.000329288305, 0.000280736276, 0.000229608908,
	0.000176085799, 0.000120362543, 6.26502006e-05, 3.1746481e-06, -5.78241743e-05,
	-0.000120093049, -0.000183366399, -0.000247367279, -0.00031180837, -0.000376393233,
	-0.000440817355, -0.000504769618, -0.000567933312, -0.000629988033, -0.000690610497,
	-0.000749476545, -0.000806262484, -0.000860646425, -0.000912310381, -0.000960941194,
	-0.00100623292, -0.00104788761, -0.00108561781, -0.0011191474, -0.00114821363,
	-0.00117256865, -0.00119198055, -0.00120623573, -0.00121513952, -0.00121851813,
	-0.00121621927, -0.0012081142, -0.0011940985, -0.00117409276, -0.00114804448,
	-0.00111592771, -0.00107774511, -0.00103352754, -0.000983335194, -0.000927257759,
	-0.000865414855, -0.000797955901, -0.000725060352, -0.00064693758, -0.000563826296,
	-0.000475994631, -0.000383739069, -0.000287384028, -0.000187280952, -8.38072519e-05,
	2.26347456e-05, 0.000131619148, 0.000242697875, 0.000355402211, 0.000469244493,
	0.00058371987, 0.000698308344, 0.000812476559, 0.000925680273, 0.00103736622,
	0.00114697462, 0.00125394191, 0.00135770231, 0.00145769131, 0.00155334792,
	0.00164411694, 0.00172945217, 0.00180881878, 0.00188169593, 0.00194757979,
	0.00200598571, 0.00205645151, 0.00209853938, 0.00213183858, 0.00215596869,
	0.00217058067, 0.00217536045, 0.00217003026, 0.00215435144, 0.0021281254, 0.00209119683,
	0.00204345398, 0.00198483118, 0.00191531051, 0.00183492154, 0.00174374366,
	0.00164190668, 0.00152959104, 0.00140702864, 0.0012745033, 0.00113234995,
	0.000980955199, 0.000820757006, 0.000652243267, 0.000475951761, 0.000292468729,
	0.00010242773, -9.34920536e-05, -0.00029456729, -0.00050003262, -0.000709082698,
	-0.000920874416, -0.00113452971, -0.00134913798, -0.00156375929, -0.00177742704,
	-0.00198915158, -0.00219792337, -0.00240271678, -0.00260249292, -0.00279620453,
	-0.00298279896, -0.00316122221, -0.00333042373, -0.00348935951, -0.00363699603,
	-0.00377231603, -0.00389432022, -0.00400203373, -0.00409450848, -0.00417082757,
	-0.00423011091, -0.00427151611, -0.00429424504, -0.00429754611, -0.00428071851,
	-0.0042431145, -0.00418414501, -0.00410327921, -0.00400005188, -0.00387406186,
	-0.00372497737, -0.00355253695, -0.00335655245, -0.00313691003, -0.00289357221,
	-0.00262657879, -0.00233604806, -0.00202217768, -0.00168524496, -0.0013256073,
	-0.00094370119, -0.000540043053, -0.0001152275, 0.00033007309, 0.000795110245,
	0.00127906061, 0.00178102846, 0.00230004685, 0.00283508166, 0.00338503229,
	0.00394873647, 0.00452497229, 0.00511246268, 0.00570987817, 0.00631584087,
	0.00692892959, 0.00754768355, 0.00817060564, 0.00879617129, 0.00942282565, 0.0100489976,
	0.0106730983, 0.0112935277, 0.0119086821, 0.0125169568, 0.0131167518, 0.0137064783,
	0.0142845633, 0.0148494542, 0.0153996246, 0.0159335807, 0.016449865, 0.0169470571,
	0.0174237899, 0.0178787429, 0.0183106512, 0.0187183097, 0.0191005766, 0.019456381,
	0.0197847206, 0.0200846698, 0.0203553792, 0.0205960833, 0.0208060965, 0.0209848229,
	0.0211317539, 0.0212464705, 0.0213286448, 0.021378044, 0.0213945266, 0.021378044,
	0.0213286448, 0.0212464705, 0.0211317539, 0.0209848229, 0.0208060965, 0.0205960833,
	0.0203553792, 0.0200846698, 0.0197847206, 0.019456381, 0.0191005766, 0.0187183097,
	0.0183106512, 0.0178787429, 0.0174237899, 0.0169470571, 0.016449865, 0.0159335807,
	0.0153996246, 0.0148494542, 0.0142845633, 0.0137064783, 0.0131167518, 0.0125169568,
	0.0119086821, 0.0112935277, 0.0106730983, 0.0100489976, 0.00942282565, 0.00879617129,
	0.00817060564, 0.00754768355, 0.00692892959, 0.00631584087, 0.00570987817,
	0.00511246268, 0.00452497229, 0.00394873647, 0.00338503229, 0.00283508166,
	0.00230004685, 0.00178102846, 0.00127906061, 0.000795110245, 0.00033007309,
	-0.0001152275, -0.000540043053, -0.00094370119, -0.0013256073, -0.00168524496,
	-0.00202217768, -0.00233604806, -0.00262657879, -0.00289357221, -0.00313691003,
	-0.00335655245, -0.00355253695, -0.00372497737, -0.00387406186, -0.00400005188,
	-0.00410327921, -0.00418414501, -0.0042431145, -0.00428071851, -0.00429754611,
	-0.00429424504, -0.00427151611, -0.00423011091, -0.00417082757, -0.00409450848,
	-0.00400203373, -0.00389432022, -0.00377231603, -0.00363699603, -0.00348935951,
	-0.00333042373, -0.00316122221, -0.00298279896, -0.00279620453, -0.00260249292,
	-0.00240271678, -0.00219792337, -0.00198915158, -0.00177742704, -0.00156375929,
	-0.00134913798, -0.00113452971, -0.000920874416, -0.000709082698, -0.00050003262,
	-0.00029456729, -9.34920536e-05, 0.00010242773, 0.000292468729, 0.000475951761,
	0.000652243267, 0.000820757006, 0.000980955199, 0.00113234995, 0.0012745033,
	0.00140702864, 0.00152959104, 0.00164190668, 0.00174374366, 0.00183492154,
	0.00191531051, 0.00198483118, 0.00204345398, 0.00209119683, 0.0021281254, 0.00215435144,
	0.00217003026, 0.00217536045, 0.00217058067, 0.00215596869, 0.00213183858,
	0.00209853938, 0.00205645151, 0.00200598571, 0.00194757979, 0.00188169593,
	0.00180881878, 0.00172945217, 0.00164411694, 0.00155334792, 0.00145769131,
	0.00135770231, 0.00125394191, 0.00114697462, 0.00103736622, 0.000925680273,
	0.000812476559, 0.000698308344, 0.00058371987, 0.000469244493, 0.000355402211,
	0.000242697875, 0.000131619148, 2.26347456e-05, -8.38072519e-05, -0.000187280952,
	-0.000287384028, -0.000383739069, -0.000475994631, -0.000563826296, -0.00064693758,
	-0.000725060352, -0.000797955901, -0.000865414855, -0.000927257759, -0.000983335194,
	-0.00103352754, -0.00107774511, -0.00111592771, -0.00114804448, -0.00117409276,
	-0.0011940985, -0.0012081142, -0.00121621927, -0.00121851813, -0.00121513952,
	-0.00120623573, -0.00119198055, -0.00117256865, -0.00114821363, -0.0011191474,
	-0.00108561781, -0.00104788761, -0.00100623292, -0.000960941194, -0.000912310381,
	-0.000860646425, -0.000806262484, -0.000749476545, -0.000690610497, -0.000629988033,
	-0.000567933312, -0.000504769618, -0.000440817355, -0.000376393233, -0.00031180837,
	-0.000247367279, -0.000183366399, -0.000120093049, -5.78241743e-05, 3.1746481e-06,
	6.26502006e-05, 0.000120362543, 0.000176085799, 0.000229608908, 0.000280736276,
	0.000329288305, 0.000375101867, 0.000418030715, 0.000457945716, 0.000494735141,
	0.000528304605, 0.000558577303, 0.000585493864, 0.000609012204, 0.000629107235,
	0.00064577075, 0.000659010897, 0.000668851833, 0.000675333198, 0.000678509474,
	0.00067844952, 0.000675235759, 0.000668963417, 0.000659740006, 0.00064768421,
	0.000632925192, 0.000615601719, 0.000595861173, 0.000573858735, 0.000549756456,
	0.00052372209, 0.000495928572, 0.000466552505, 0.000435773749, 0.000403774116,
	0.000370736612, 0.000336844445, 0.000302280183, 0.00026722491, 0.000231857353,
	0.000196353052, 0.000160883646, 0.000125616119, 9.07121066e-05, 5.63272843e-05,
	2.26107204e-05, -1.02956583e-05, -4.22575577e-05, -7.31487889e-05, -0.000102851649,
	-0.0001312573, -0.000158266062, -0.000183787619, -0.00020774125, -0.000230056001,
	-0.000250670681, -0.000269534008, -0.000286604511, -0.000301850494, -0.000315250014,
	-0.000326790585, -0.000336469064, -0.000344291446, -0.000350272545, -0.000354435673,
	-0.000356812321, -0.00035744175, -0.000356370641, -0.000353652606, -0.000349347829,
	-0.000343522406, -0.000336248049, -0.000327601447, -0.000317663886, -0.000306520524,
	-0.000294260069, -0.000280974054, -0.000266756455, -0.000251703081, -0.000235911066,
	-0.000219478316, -0.000202503041, -0.000185083278, -0.000167316335, -0.000149298372,
	-0.00013112399, -0.000112885718, -9.46736836e-05, -7.65751902e-05, -5.86743881e-05,
	-4.10519388e-05, -2.37846998e-05, -6.9454677e-06, 9.39727943e-06, 2.517959e-05,
	4.03422346e-05, 5.48308526e-05, 6.85960986e-05, 8.15937165e-05, 9.37846344e-05,
	0.00010513499, 0.000115616152, 0.000125204708, 0.000133882408, 0.000141636119,
	0.000148457751, 0.000154344089, 0.000159296702, 0.000163321776, 0.000166429949,
	0.000168636107, 0.000169959167, 0.000170421874, 0.000170050567, 0.000168874903,
	0.000166927624, 0.00016424428, 0.000160862968, 0.000156824055, 0.000152169887,
	0.000146944498, 0.000141193348, 0.000134963077, 0.000128301122, 0.000121255543,
	0.000113874732, 0.000106207117, 9.8300945e-05, 9.02040192e-05, 8.19634733e-05,
	7.36255533e-05, 6.52353847e-05, 5.68367941e-05, 4.84721313e-05, 4.01820726e-05,
	3.20054787e-05, 2.39792553e-05, 1.61382231e-05, 8.51500499e-06, 1.1399303e-06,
	-5.95904385e-06, -1.27563999e-05, -1.92291063e-05, -2.53566541e-05, -3.11210824e-05,
	-3.65069718e-05, -4.15014438e-05, -4.60941483e-05, -5.02772018e-05, -5.40451692e-05,
	-5.73949947e-05, -6.03259214e-05, -6.28394337e-05, -6.49391368e-05, -6.66306951e-05,
	-6.79217046e-05, -6.88215878e-05, -6.93414622e-05, -6.94940318e-05, -6.929347e-05,
	-6.87552456e-05, -6.78960423e-05, -6.67335698e-05, -6.52864837e-05, -6.35741962e-05,
	-6.16167745e-05, -5.94347839e-05, -5.7049172e-05, -5.44811264e-05, -5.1751962e-05,
	-4.88829792e-05, -4.58953655e-05, -4.28100684e-05, -3.96476935e-05, -3.6428406e-05,
	-3.31718329e-05, -2.98969644e-05, -2.66220941e-05, -2.33647279e-05, -2.01415241e-05,
	-1.69682298e-05, -1.38596333e-05, -1.08295135e-05, -7.89061141e-06, -5.05459457e-06,
	-2.33203582e-06, 2.67599717e-07, 2.73596333e-06, 5.06582364e-06, 7.25106111e-06,
	9.28665577e-06, 1.11686695e-05, 1.28942211e-05, 1.44614614e-05, 1.58695329e-05,
	1.71185384e-05, 1.82094936e-05, 1.91442796e-05, 1.99256028e-05, 2.05569286e-05,
	2.10424369e-05, 2.13869625e-05, 2.15959353e-05, 2.16753215e-05, 2.1631562e-05,
	2.14715128e-05, 2.12023861e-05, 2.08316851e-05, 2.03671498e-05, 1.98166963e-05,
	1.91883573e-05, 1.84902274e-05, 1.77304173e-05, 1.69169907e-05, 1.60579257e-05,
	1.51610629e-05, 1.42340659e-05, 1.32843779e-05, 1.23191885e-05, 1.13453989e-05,
	1.03695902e-05, 9.39799884e-06, 8.43649013e-06, 7.49054334e-06, 6.56523071e-06,
	5.66520612e-06, 4.79469554e-06, 3.95749112e-06, 3.15694547e-06, 2.39597489e-06,
	1.6770598e-06, 1.00225088e-06, 3.73177528e-07, -2.08941884e-07, -7.43286819e-07,
	-1.22941947e-06, -1.66726795e-06, -2.05710762e-06, -2.39954034e-06, -2.69547354e-06,
	-2.94609754e-06, -3.15286115e-06, -3.31744877e-06, -3.44175396e-06, -3.52785605e-06,
	-3.57799331e-06, -3.59453884e-06, -3.57997556e-06, -3.53687096e-06, -3.46785373e-06,
	-3.3755905e-06, -3.26276313e-06, -3.1320476e-06,
}

// half band filter used by each of the three 2 to 1 stages of the 44.1kHz
// cascade
var halfBand11 = []float32{
	0.00663157854, 0, -0.0510312504, 0, 0.294402076, 0.5, 0.294402076, 0, -0.0510312504, 0,
	0.00663157854,
}

// final stage of the 44.1kHz cascade. decimates 5 to 1
var fir5to1 = []float32{
	2.20556937e-05, 0.00016140588, 0.000445594703, 0.0010027492, 0.00192490465,
	0.00329270018, 0.00512706235, 0.00736004411, 0.00981205321, 0.0121909307, 0.0141191541,
	0.0151910823, 0.0150538693, 0.0134974986, 0.0105329636, 0.00643584413, 0.00173670943,
	-0.00285005118, -0.00655296569, -0.00870383247, -0.00889709513, -0.00710826578,
	-0.00373593674, 0.000453542329, 0.00447681838, 0.00735267491, 0.00834099025,
	0.00714221325, 0.00400125816, -0.000320560284, -0.00471054633, -0.00797562282,
	-0.00915628154, -0.00780271185, -0.00413496542, 0.000966745057, 0.0061542204,
	0.00994908482, 0.0111461262, 0.00917646468, 0.00432569379, -0.00226700443,
	-0.00884948402, -0.0134933485, -0.0146242201, -0.0115081222, -0.00455462351,
	0.00466601328, 0.0137262468, 0.0199174924, 0.0209729034, 0.0157600954, 0.00475848455,
	-0.00982530062, -0.0243694387, -0.0345398969, -0.0362454725, -0.0266341112,
	-0.00489382019, 0.0273454403, 0.0661294121, 0.105819524, 0.140135853, 0.163385244,
	0.171607499, 0.163385244, 0.140135853, 0.105819524, 0.0661294121, 0.0273454403,
	-0.00489382019, -0.0266341112, -0.0362454725, -0.0345398969, -0.0243694387,
	-0.00982530062, 0.00475848455, 0.0157600954, 0.0209729034, 0.0199174924, 0.0137262468,
	0.00466601328, -0.00455462351, -0.0115081222, -0.0146242201, -0.0134933485,
	-0.00884948402, -0.00226700443, 0.00432569379, 0.00917646468, 0.0111461262,
	0.00994908482, 0.0061542204, 0.000966745057, -0.00413496542, -0.00780271185,
	-0.00915628154, -0.00797562282, -0.00471054633, -0.000320560284, 0.00400125816,
	0.00714221325, 0.00834099025, 0.00735267491, 0.00447681838, 0.000453542329,
	-0.00373593674, -0.00710826578, -0.00889709513, -0.00870383247, -0.00655296569,
	-0.00285005118, 0.00173670943, 0.00643584413, 0.0105329636, 0.0134974986, 0.0150538693,
	0.0151910823, 0.0141191541, 0.0121909307, 0.00981205321, 0.00736004411, 0.00512706235,
	0.00329270018, 0.00192490465, 0.0010027492, 0.000445594703, 0.00016140588,
	2.20556937e-05,
}

// half band filters used by the four 2 to 1 stages of the 56kHz cascade.
// the first two stages are identical
var halfBand7 = []float32{
	-0.0317153387, 0, 0.281713371, 0.5, 0.281713371, 0, -0.0317153387,
}

var halfBand11a = []float32{
	0.00646365288, 0, -0.0505708635, 0, 0.294108387, 0.5, 0.294108387, 0, -0.0505708635, 0,
	0.00646365288,
}

var halfBand11b = []float32{
	0.00861745603, 0, -0.0558585904, 0, 0.297319844, 0.5, 0.297319844, 0, -0.0558585904, 0,
	0.00861745603,
}

// final stage of the 56kHz cascade. decimates 2 to 1
var fir2to1 = []float32{
	-0.000870317107, -0.00111155024, 0.00167917636, 0.00656295133, 0.00693069642,
	-0.00128047749, -0.0095700333, -0.00419334691, 0.0117889031, 0.0148813385,
	-0.00694194798, -0.0268696695, -0.00827470923, 0.0347121911, 0.0369648444,
	-0.0291713602, -0.0845631748, -0.0111420707, 0.195989741, 0.383051868, 0.383051868,
	0.195989741, -0.0111420707, -0.0845631748, -0.0291713602, 0.0369648444, 0.0347121911,
	-0.00827470923, -0.0268696695, -0.00694194798, 0.0148813385, 0.0117889031,
	-0.00419334691, -0.0095700333, -0.00128047749, 0.00693069642, 0.00656295133,
	0.00167917636, -0.00111155024, -0.000870317107,
}
