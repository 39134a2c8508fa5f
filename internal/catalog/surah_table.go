package catalog

import "github.com/albayan/bayan/internal/domain"

// surahTable is the static surah index: Arabic name, transliteration,
// verse count, first mushaf page and revelation place.
var surahTable = [domain.SurahCount]domain.SurahInfo{
	{ID: 1, Name: "الفاتحة", Transliteration: "Al-Fatihah", VersesCount: 7, StartPage: 1, RevelationPlace: domain.Meccan},
	{ID: 2, Name: "البقرة", Transliteration: "Al-Baqarah", VersesCount: 286, StartPage: 2, RevelationPlace: domain.Medinan},
	{ID: 3, Name: "آل عمران", Transliteration: "Aal-E-Imran", VersesCount: 200, StartPage: 50, RevelationPlace: domain.Medinan},
	{ID: 4, Name: "النساء", Transliteration: "An-Nisa", VersesCount: 176, StartPage: 77, RevelationPlace: domain.Medinan},
	{ID: 5, Name: "المائدة", Transliteration: "Al-Ma'idah", VersesCount: 120, StartPage: 106, RevelationPlace: domain.Medinan},
	{ID: 6, Name: "الأنعام", Transliteration: "Al-An'am", VersesCount: 165, StartPage: 128, RevelationPlace: domain.Meccan},
	{ID: 7, Name: "الأعراف", Transliteration: "Al-A'raf", VersesCount: 206, StartPage: 151, RevelationPlace: domain.Meccan},
	{ID: 8, Name: "الأنفال", Transliteration: "Al-Anfal", VersesCount: 75, StartPage: 177, RevelationPlace: domain.Medinan},
	{ID: 9, Name: "التوبة", Transliteration: "At-Tawbah", VersesCount: 129, StartPage: 187, RevelationPlace: domain.Medinan},
	{ID: 10, Name: "يونس", Transliteration: "Yunus", VersesCount: 109, StartPage: 208, RevelationPlace: domain.Meccan},
	{ID: 11, Name: "هود", Transliteration: "Hud", VersesCount: 123, StartPage: 221, RevelationPlace: domain.Meccan},
	{ID: 12, Name: "يوسف", Transliteration: "Yusuf", VersesCount: 111, StartPage: 235, RevelationPlace: domain.Meccan},
	{ID: 13, Name: "الرعد", Transliteration: "Ar-Ra'd", VersesCount: 43, StartPage: 249, RevelationPlace: domain.Medinan},
	{ID: 14, Name: "إبراهيم", Transliteration: "Ibrahim", VersesCount: 52, StartPage: 255, RevelationPlace: domain.Meccan},
	{ID: 15, Name: "الحجر", Transliteration: "Al-Hijr", VersesCount: 99, StartPage: 262, RevelationPlace: domain.Meccan},
	{ID: 16, Name: "النحل", Transliteration: "An-Nahl", VersesCount: 128, StartPage: 267, RevelationPlace: domain.Meccan},
	{ID: 17, Name: "الإسراء", Transliteration: "Al-Isra", VersesCount: 111, StartPage: 282, RevelationPlace: domain.Meccan},
	{ID: 18, Name: "الكهف", Transliteration: "Al-Kahf", VersesCount: 110, StartPage: 293, RevelationPlace: domain.Meccan},
	{ID: 19, Name: "مريم", Transliteration: "Maryam", VersesCount: 98, StartPage: 305, RevelationPlace: domain.Meccan},
	{ID: 20, Name: "طه", Transliteration: "Ta-Ha", VersesCount: 135, StartPage: 312, RevelationPlace: domain.Meccan},
	{ID: 21, Name: "الأنبياء", Transliteration: "Al-Anbiya", VersesCount: 112, StartPage: 322, RevelationPlace: domain.Meccan},
	{ID: 22, Name: "الحج", Transliteration: "Al-Hajj", VersesCount: 78, StartPage: 332, RevelationPlace: domain.Medinan},
	{ID: 23, Name: "المؤمنون", Transliteration: "Al-Mu'minun", VersesCount: 118, StartPage: 342, RevelationPlace: domain.Meccan},
	{ID: 24, Name: "النور", Transliteration: "An-Nur", VersesCount: 64, StartPage: 350, RevelationPlace: domain.Medinan},
	{ID: 25, Name: "الفرقان", Transliteration: "Al-Furqan", VersesCount: 77, StartPage: 359, RevelationPlace: domain.Meccan},
	{ID: 26, Name: "الشعراء", Transliteration: "Ash-Shu'ara", VersesCount: 227, StartPage: 367, RevelationPlace: domain.Meccan},
	{ID: 27, Name: "النمل", Transliteration: "An-Naml", VersesCount: 93, StartPage: 377, RevelationPlace: domain.Meccan},
	{ID: 28, Name: "القصص", Transliteration: "Al-Qasas", VersesCount: 88, StartPage: 385, RevelationPlace: domain.Meccan},
	{ID: 29, Name: "العنكبوت", Transliteration: "Al-Ankabut", VersesCount: 69, StartPage: 396, RevelationPlace: domain.Meccan},
	{ID: 30, Name: "الروم", Transliteration: "Ar-Rum", VersesCount: 60, StartPage: 404, RevelationPlace: domain.Meccan},
	{ID: 31, Name: "لقمان", Transliteration: "Luqman", VersesCount: 34, StartPage: 411, RevelationPlace: domain.Meccan},
	{ID: 32, Name: "السجدة", Transliteration: "As-Sajdah", VersesCount: 30, StartPage: 415, RevelationPlace: domain.Meccan},
	{ID: 33, Name: "الأحزاب", Transliteration: "Al-Ahzab", VersesCount: 73, StartPage: 418, RevelationPlace: domain.Medinan},
	{ID: 34, Name: "سبأ", Transliteration: "Saba", VersesCount: 54, StartPage: 428, RevelationPlace: domain.Meccan},
	{ID: 35, Name: "فاطر", Transliteration: "Fatir", VersesCount: 45, StartPage: 434, RevelationPlace: domain.Meccan},
	{ID: 36, Name: "يس", Transliteration: "Ya-Sin", VersesCount: 83, StartPage: 440, RevelationPlace: domain.Meccan},
	{ID: 37, Name: "الصافات", Transliteration: "As-Saffat", VersesCount: 182, StartPage: 446, RevelationPlace: domain.Meccan},
	{ID: 38, Name: "ص", Transliteration: "Sad", VersesCount: 88, StartPage: 453, RevelationPlace: domain.Meccan},
	{ID: 39, Name: "الزمر", Transliteration: "Az-Zumar", VersesCount: 75, StartPage: 458, RevelationPlace: domain.Meccan},
	{ID: 40, Name: "غافر", Transliteration: "Ghafir", VersesCount: 85, StartPage: 467, RevelationPlace: domain.Meccan},
	{ID: 41, Name: "فصلت", Transliteration: "Fussilat", VersesCount: 54, StartPage: 477, RevelationPlace: domain.Meccan},
	{ID: 42, Name: "الشورى", Transliteration: "Ash-Shura", VersesCount: 53, StartPage: 483, RevelationPlace: domain.Meccan},
	{ID: 43, Name: "الزخرف", Transliteration: "Az-Zukhruf", VersesCount: 89, StartPage: 489, RevelationPlace: domain.Meccan},
	{ID: 44, Name: "الدخان", Transliteration: "Ad-Dukhan", VersesCount: 59, StartPage: 496, RevelationPlace: domain.Meccan},
	{ID: 45, Name: "الجاثية", Transliteration: "Al-Jathiyah", VersesCount: 37, StartPage: 499, RevelationPlace: domain.Meccan},
	{ID: 46, Name: "الأحقاف", Transliteration: "Al-Ahqaf", VersesCount: 35, StartPage: 502, RevelationPlace: domain.Meccan},
	{ID: 47, Name: "محمد", Transliteration: "Muhammad", VersesCount: 38, StartPage: 507, RevelationPlace: domain.Medinan},
	{ID: 48, Name: "الفتح", Transliteration: "Al-Fath", VersesCount: 29, StartPage: 511, RevelationPlace: domain.Medinan},
	{ID: 49, Name: "الحجرات", Transliteration: "Al-Hujurat", VersesCount: 18, StartPage: 515, RevelationPlace: domain.Medinan},
	{ID: 50, Name: "ق", Transliteration: "Qaf", VersesCount: 45, StartPage: 518, RevelationPlace: domain.Meccan},
	{ID: 51, Name: "الذاريات", Transliteration: "Adh-Dhariyat", VersesCount: 60, StartPage: 520, RevelationPlace: domain.Meccan},
	{ID: 52, Name: "الطور", Transliteration: "At-Tur", VersesCount: 49, StartPage: 523, RevelationPlace: domain.Meccan},
	{ID: 53, Name: "النجم", Transliteration: "An-Najm", VersesCount: 62, StartPage: 526, RevelationPlace: domain.Meccan},
	{ID: 54, Name: "القمر", Transliteration: "Al-Qamar", VersesCount: 55, StartPage: 528, RevelationPlace: domain.Meccan},
	{ID: 55, Name: "الرحمن", Transliteration: "Ar-Rahman", VersesCount: 78, StartPage: 531, RevelationPlace: domain.Medinan},
	{ID: 56, Name: "الواقعة", Transliteration: "Al-Waqi'ah", VersesCount: 96, StartPage: 534, RevelationPlace: domain.Meccan},
	{ID: 57, Name: "الحديد", Transliteration: "Al-Hadid", VersesCount: 29, StartPage: 537, RevelationPlace: domain.Medinan},
	{ID: 58, Name: "المجادلة", Transliteration: "Al-Mujadilah", VersesCount: 22, StartPage: 542, RevelationPlace: domain.Medinan},
	{ID: 59, Name: "الحشر", Transliteration: "Al-Hashr", VersesCount: 24, StartPage: 545, RevelationPlace: domain.Medinan},
	{ID: 60, Name: "الممتحنة", Transliteration: "Al-Mumtahanah", VersesCount: 13, StartPage: 549, RevelationPlace: domain.Medinan},
	{ID: 61, Name: "الصف", Transliteration: "As-Saff", VersesCount: 14, StartPage: 551, RevelationPlace: domain.Medinan},
	{ID: 62, Name: "الجمعة", Transliteration: "Al-Jumu'ah", VersesCount: 11, StartPage: 553, RevelationPlace: domain.Medinan},
	{ID: 63, Name: "المنافقون", Transliteration: "Al-Munafiqun", VersesCount: 11, StartPage: 554, RevelationPlace: domain.Medinan},
	{ID: 64, Name: "التغابن", Transliteration: "At-Taghabun", VersesCount: 18, StartPage: 556, RevelationPlace: domain.Medinan},
	{ID: 65, Name: "الطلاق", Transliteration: "At-Talaq", VersesCount: 12, StartPage: 558, RevelationPlace: domain.Medinan},
	{ID: 66, Name: "التحريم", Transliteration: "At-Tahrim", VersesCount: 12, StartPage: 560, RevelationPlace: domain.Medinan},
	{ID: 67, Name: "الملك", Transliteration: "Al-Mulk", VersesCount: 30, StartPage: 562, RevelationPlace: domain.Meccan},
	{ID: 68, Name: "القلم", Transliteration: "Al-Qalam", VersesCount: 52, StartPage: 564, RevelationPlace: domain.Meccan},
	{ID: 69, Name: "الحاقة", Transliteration: "Al-Haqqah", VersesCount: 52, StartPage: 566, RevelationPlace: domain.Meccan},
	{ID: 70, Name: "المعارج", Transliteration: "Al-Ma'arij", VersesCount: 44, StartPage: 568, RevelationPlace: domain.Meccan},
	{ID: 71, Name: "نوح", Transliteration: "Nuh", VersesCount: 28, StartPage: 570, RevelationPlace: domain.Meccan},
	{ID: 72, Name: "الجن", Transliteration: "Al-Jinn", VersesCount: 28, StartPage: 572, RevelationPlace: domain.Meccan},
	{ID: 73, Name: "المزمل", Transliteration: "Al-Muzzammil", VersesCount: 20, StartPage: 574, RevelationPlace: domain.Meccan},
	{ID: 74, Name: "المدثر", Transliteration: "Al-Muddaththir", VersesCount: 56, StartPage: 575, RevelationPlace: domain.Meccan},
	{ID: 75, Name: "القيامة", Transliteration: "Al-Qiyamah", VersesCount: 40, StartPage: 577, RevelationPlace: domain.Meccan},
	{ID: 76, Name: "الإنسان", Transliteration: "Al-Insan", VersesCount: 31, StartPage: 578, RevelationPlace: domain.Medinan},
	{ID: 77, Name: "المرسلات", Transliteration: "Al-Mursalat", VersesCount: 50, StartPage: 580, RevelationPlace: domain.Meccan},
	{ID: 78, Name: "النبأ", Transliteration: "An-Naba", VersesCount: 40, StartPage: 582, RevelationPlace: domain.Meccan},
	{ID: 79, Name: "النازعات", Transliteration: "An-Nazi'at", VersesCount: 46, StartPage: 583, RevelationPlace: domain.Meccan},
	{ID: 80, Name: "عبس", Transliteration: "Abasa", VersesCount: 42, StartPage: 585, RevelationPlace: domain.Meccan},
	{ID: 81, Name: "التكوير", Transliteration: "At-Takwir", VersesCount: 29, StartPage: 586, RevelationPlace: domain.Meccan},
	{ID: 82, Name: "الانفطار", Transliteration: "Al-Infitar", VersesCount: 19, StartPage: 587, RevelationPlace: domain.Meccan},
	{ID: 83, Name: "المطففين", Transliteration: "Al-Mutaffifin", VersesCount: 36, StartPage: 587, RevelationPlace: domain.Meccan},
	{ID: 84, Name: "الانشقاق", Transliteration: "Al-Inshiqaq", VersesCount: 25, StartPage: 589, RevelationPlace: domain.Meccan},
	{ID: 85, Name: "البروج", Transliteration: "Al-Buruj", VersesCount: 22, StartPage: 590, RevelationPlace: domain.Meccan},
	{ID: 86, Name: "الطارق", Transliteration: "At-Tariq", VersesCount: 17, StartPage: 591, RevelationPlace: domain.Meccan},
	{ID: 87, Name: "الأعلى", Transliteration: "Al-A'la", VersesCount: 19, StartPage: 591, RevelationPlace: domain.Meccan},
	{ID: 88, Name: "الغاشية", Transliteration: "Al-Ghashiyah", VersesCount: 26, StartPage: 592, RevelationPlace: domain.Meccan},
	{ID: 89, Name: "الفجر", Transliteration: "Al-Fajr", VersesCount: 30, StartPage: 593, RevelationPlace: domain.Meccan},
	{ID: 90, Name: "البلد", Transliteration: "Al-Balad", VersesCount: 20, StartPage: 594, RevelationPlace: domain.Meccan},
	{ID: 91, Name: "الشمس", Transliteration: "Ash-Shams", VersesCount: 15, StartPage: 595, RevelationPlace: domain.Meccan},
	{ID: 92, Name: "الليل", Transliteration: "Al-Layl", VersesCount: 21, StartPage: 595, RevelationPlace: domain.Meccan},
	{ID: 93, Name: "الضحى", Transliteration: "Ad-Duha", VersesCount: 11, StartPage: 596, RevelationPlace: domain.Meccan},
	{ID: 94, Name: "الشرح", Transliteration: "Ash-Sharh", VersesCount: 8, StartPage: 596, RevelationPlace: domain.Meccan},
	{ID: 95, Name: "التين", Transliteration: "At-Tin", VersesCount: 8, StartPage: 597, RevelationPlace: domain.Meccan},
	{ID: 96, Name: "العلق", Transliteration: "Al-Alaq", VersesCount: 19, StartPage: 597, RevelationPlace: domain.Meccan},
	{ID: 97, Name: "القدر", Transliteration: "Al-Qadr", VersesCount: 5, StartPage: 598, RevelationPlace: domain.Meccan},
	{ID: 98, Name: "البينة", Transliteration: "Al-Bayyinah", VersesCount: 8, StartPage: 598, RevelationPlace: domain.Medinan},
	{ID: 99, Name: "الزلزلة", Transliteration: "Az-Zalzalah", VersesCount: 8, StartPage: 599, RevelationPlace: domain.Medinan},
	{ID: 100, Name: "العاديات", Transliteration: "Al-Adiyat", VersesCount: 11, StartPage: 599, RevelationPlace: domain.Meccan},
	{ID: 101, Name: "القارعة", Transliteration: "Al-Qari'ah", VersesCount: 11, StartPage: 600, RevelationPlace: domain.Meccan},
	{ID: 102, Name: "التكاثر", Transliteration: "At-Takathur", VersesCount: 8, StartPage: 600, RevelationPlace: domain.Meccan},
	{ID: 103, Name: "العصر", Transliteration: "Al-Asr", VersesCount: 3, StartPage: 601, RevelationPlace: domain.Meccan},
	{ID: 104, Name: "الهمزة", Transliteration: "Al-Humazah", VersesCount: 9, StartPage: 601, RevelationPlace: domain.Meccan},
	{ID: 105, Name: "الفيل", Transliteration: "Al-Fil", VersesCount: 5, StartPage: 601, RevelationPlace: domain.Meccan},
	{ID: 106, Name: "قريش", Transliteration: "Quraysh", VersesCount: 4, StartPage: 602, RevelationPlace: domain.Meccan},
	{ID: 107, Name: "الماعون", Transliteration: "Al-Ma'un", VersesCount: 7, StartPage: 602, RevelationPlace: domain.Meccan},
	{ID: 108, Name: "الكوثر", Transliteration: "Al-Kawthar", VersesCount: 3, StartPage: 602, RevelationPlace: domain.Meccan},
	{ID: 109, Name: "الكافرون", Transliteration: "Al-Kafirun", VersesCount: 6, StartPage: 603, RevelationPlace: domain.Meccan},
	{ID: 110, Name: "النصر", Transliteration: "An-Nasr", VersesCount: 3, StartPage: 603, RevelationPlace: domain.Medinan},
	{ID: 111, Name: "المسد", Transliteration: "Al-Masad", VersesCount: 5, StartPage: 603, RevelationPlace: domain.Meccan},
	{ID: 112, Name: "الإخلاص", Transliteration: "Al-Ikhlas", VersesCount: 4, StartPage: 604, RevelationPlace: domain.Meccan},
	{ID: 113, Name: "الفلق", Transliteration: "Al-Falaq", VersesCount: 5, StartPage: 604, RevelationPlace: domain.Meccan},
	{ID: 114, Name: "الناس", Transliteration: "An-Nas", VersesCount: 6, StartPage: 604, RevelationPlace: domain.Meccan},
}
