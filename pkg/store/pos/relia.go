package pos

// reliaProductIDs is the fixed set of Relia catalogue products counted by the
// revenue and ranking reports. Product ids outside this set are ignored.
var reliaProductIDs = []int64{
	1678, 1134, 1823, 917, 1907, 1162, 334, 834, 1505, 976, 978, 977,
	1202, 994, 993, 995, 1400, 992, 1018, 1019, 1210, 1786, 1023, 835,
	335, 874, 1221, 877, 1209, 1145, 893, 1211, 1064, 1723, 1188, 1057,
	414, 1097, 896, 895, 1894, 1520, 1871, 1151, 1759, 1142, 1856, 938,
	937, 1316, 415, 1125, 1294, 1855, 1129, 1720, 1822, 1820, 1725, 1789,
	1772, 1734, 1758, 1757, 910, 1205, 930, 1795, 933, 1490, 1491, 1492,
	1493, 1464, 1457, 881, 884, 879, 883, 880, 1234, 1866, 1235, 1233,
	882, 1247, 1073, 1551, 1160, 1722, 1072, 1074, 1075, 1076, 1424, 321,
	1315, 916, 1123, 920, 417, 1912, 1099, 1007, 419, 1030, 1546, 1154,
	1229, 915, 1090, 1248, 1143, 1084, 1153, 1699, 1333, 1329, 421, 1231,
	1130, 1261, 1104, 1170, 919, 1061, 1041, 422, 423, 1737, 424, 1541,
	1120, 1111, 1101, 1124, 1379, 996, 936, 1767, 1721, 1782, 1062, 1003,
	921, 997, 922, 1128, 1169, 1140, 1733, 1108, 1220, 1677, 1544, 1693,
	1719, 1718, 1710, 1262, 1241, 1735, 1252, 1762, 828, 1192, 1159, 1328,
	1029, 826, 1117, 973, 975, 972, 426, 427, 1764, 1033, 1034, 1079,
	1172, 1304, 1300, 1904, 1028, 428, 1080, 929, 1206, 1009, 1020, 366,
	429, 1908, 1017, 1011, 1016, 1012, 1729, 1195, 1456, 1700, 1717, 1715,
	1588, 1701, 1190, 865, 1724, 1324, 1215, 1158, 430, 1044, 945, 1037,
	431, 866, 501, 864, 504, 502, 503, 1257, 505, 1100, 432, 1539,
	1684, 1325, 1182, 1183, 1047, 1547, 1535, 1144, 1489, 1601, 1602, 1548,
	1557, 1910, 1628, 1629, 1632, 1633, 1636, 1614, 1618, 1619, 1611, 1613,
	1569, 888, 887, 886, 1228, 1165, 1193, 1118, 1116, 1176, 1186, 1299,
	1536, 1024, 1002, 1396, 1001, 435, 1887, 1150, 1121, 986, 1265, 1058,
	1250, 1087, 1069, 1105, 1552, 1553, 1226, 1086, 934, 935, 1320, 1071,
	1458, 1481, 1482, 1199, 1620, 1480, 1113, 1066, 1558, 1560, 1561, 1564,
	1565, 1065, 1068, 1203, 1070, 1114, 1219, 931, 827, 1319, 1191, 1096,
	1059, 1208, 1216, 1244, 1217, 1127, 1085, 1067, 987, 1112, 1092, 1460,
	1526, 1103, 1173, 1223, 1197, 1198, 985, 1189, 1109, 768, 1549, 1088,
	1135, 1395, 1256, 1095, 1568, 904, 1222, 891, 1373, 769, 250, 1807,
	1768, 1714, 1727, 1238, 1741, 1888, 1152, 1139, 1802, 829, 969, 970,
	1184, 968, 1185, 1148, 319, 1832, 1412, 1410, 1411, 1419, 1115, 1712,
	1713, 1874, 1177, 1230, 1232, 1224, 1174, 903, 1089, 901, 918, 1157,
	1461, 1407, 1408, 1439, 1227, 1796, 1455, 1382, 1266, 984, 981, 1107,
	1110, 1026, 1194, 1242, 1050, 913, 440, 1331, 1163, 1035, 1081, 1394,
	988, 989, 1091, 1240, 1736, 1794, 442, 1043, 1338, 1046, 1180, 1060,
	486, 1119, 1098, 1726, 1770, 1214, 1644, 538, 533, 532, 535, 534,
	1371, 1132, 539, 1131, 1126, 1370, 1369, 1372, 536, 537, 1149, 531,
	1704, 1538, 1809, 1267, 1122, 1264, 1522, 1524, 1525, 1521, 1187, 1738,
}

// ReliaProductIDs returns a copy of the built-in Relia product set.
func ReliaProductIDs() []int64 {
	ids := make([]int64, len(reliaProductIDs))
	copy(ids, reliaProductIDs)
	return ids
}
