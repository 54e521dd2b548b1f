package corpus

import "fmt"

// monthNames holds the canonical English spelling for each month number.
var monthNames = [13]string{
	"", "january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var weekdayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// monthWords lists month vocabulary per language, indexed by month-1.
// Abbreviations that collide with common words in another language (the
// Spanish "ago" for agosto) are deliberately absent.
var monthWords = [][12][]string{
	// English
	{
		{"january", "jan"}, {"february", "feb"}, {"march", "mar"}, {"april", "apr"},
		{"may"}, {"june", "jun"}, {"july", "jul"}, {"august", "aug"},
		{"september", "sep", "sept"}, {"october", "oct"}, {"november", "nov"}, {"december", "dec"},
	},
	// Chinese numerals
	{
		{"一月"}, {"二月"}, {"三月"}, {"四月"}, {"五月"}, {"六月"},
		{"七月"}, {"八月"}, {"九月"}, {"十月"}, {"十一月"}, {"十二月"},
	},
	// Spanish
	{
		{"enero", "ene"}, {"febrero"}, {"marzo"}, {"abril", "abr"}, {"mayo"}, {"junio"},
		{"julio"}, {"agosto"}, {"septiembre", "setiembre"}, {"octubre"}, {"noviembre"}, {"diciembre", "dic"},
	},
	// French
	{
		{"janvier", "janv"}, {"février", "févr", "fév"}, {"mars"}, {"avril", "avr"}, {"mai"}, {"juin"},
		{"juillet", "juil"}, {"août"}, {"septembre"}, {"octobre"}, {"novembre"}, {"décembre", "déc"},
	},
	// German
	{
		{"januar", "jän", "jänner"}, {"februar"}, {"märz", "mär"}, {"april"}, {"mai"}, {"juni"},
		{"juli"}, {"august"}, {"september"}, {"oktober", "okt"}, {"november"}, {"dezember", "dez"},
	},
	// Portuguese
	{
		{"janeiro"}, {"fevereiro"}, {"março"}, {"abril"}, {"maio"}, {"junho"},
		{"julho"}, {"agosto"}, {"setembro"}, {"outubro"}, {"novembro"}, {"dezembro"},
	},
	// Italian
	{
		{"gennaio"}, {"febbraio"}, {"marzo"}, {"aprile"}, {"maggio"}, {"giugno"},
		{"luglio"}, {"agosto"}, {"settembre"}, {"ottobre"}, {"novembre"}, {"dicembre"},
	},
	// Russian, nominative and genitive
	{
		{"январь", "января"}, {"февраль", "февраля"}, {"март", "марта"}, {"апрель", "апреля"},
		{"май", "мая"}, {"июнь", "июня"}, {"июль", "июля"}, {"август", "августа"},
		{"сентябрь", "сентября"}, {"октябрь", "октября"}, {"ноябрь", "ноября"}, {"декабрь", "декабря"},
	},
}

// thaiMonthWords mark the input as using the Buddhist calendar.
var thaiMonthWords = [12][]string{
	{"มกราคม", "ม.ค."}, {"กุมภาพันธ์", "ก.พ."}, {"มีนาคม", "มี.ค."}, {"เมษายน", "เม.ย."},
	{"พฤษภาคม", "พ.ค."}, {"มิถุนายน", "มิ.ย."}, {"กรกฎาคม", "ก.ค."}, {"สิงหาคม", "ส.ค."},
	{"กันยายน", "ก.ย."}, {"ตุลาคม", "ต.ค."}, {"พฤศจิกายน", "พ.ย."}, {"ธันวาคม", "ธ.ค."},
}

// numericMonthSuffixes attach to a month number: 10月, 10월.
var numericMonthSuffixes = []string{"月", "월"}

var weekdayWords = [][7][]string{
	{
		{"monday", "mon"}, {"tuesday", "tue", "tues"}, {"wednesday", "wed"}, {"thursday", "thu", "thur", "thurs"},
		{"friday", "fri"}, {"saturday", "sat"}, {"sunday", "sun"},
	},
	{
		{"星期一", "周一", "週一", "礼拜一", "禮拜一"}, {"星期二", "周二", "週二", "礼拜二", "禮拜二"},
		{"星期三", "周三", "週三", "礼拜三", "禮拜三"}, {"星期四", "周四", "週四", "礼拜四", "禮拜四"},
		{"星期五", "周五", "週五", "礼拜五", "禮拜五"}, {"星期六", "周六", "週六", "礼拜六", "禮拜六"},
		{"星期日", "星期天", "周日", "週日", "礼拜天", "禮拜天"},
	},
	{
		{"月曜日", "月曜"}, {"火曜日", "火曜"}, {"水曜日", "水曜"}, {"木曜日", "木曜"},
		{"金曜日", "金曜"}, {"土曜日", "土曜"}, {"日曜日", "日曜"},
	},
	{{"월요일"}, {"화요일"}, {"수요일"}, {"목요일"}, {"금요일"}, {"토요일"}, {"일요일"}},
	{{"lunes"}, {"martes"}, {"miércoles"}, {"jueves"}, {"viernes"}, {"sábado"}, {"domingo"}},
	{{"lundi"}, {"mardi"}, {"mercredi"}, {"jeudi"}, {"vendredi"}, {"samedi"}, {"dimanche"}},
	{{"montag"}, {"dienstag"}, {"mittwoch"}, {"donnerstag"}, {"freitag"}, {"samstag"}, {"sonntag"}},
}

var meridianWords = map[string]string{
	"am":   "am",
	"a.m.": "am",
	"上午":   "am",
	"早上":   "am",
	"凌晨":   "am",
	"午前":   "am",
	"오전":   "am",
	"pm":   "pm",
	"p.m.": "pm",
	"下午":   "pm",
	"中午":   "pm",
	"傍晚":   "pm",
	"晚上":   "pm",
	"午後":   "pm",
	"오후":   "pm",
}

// unitWords are the duration vocabulary shared with the relative phrases.
var unitWords = []string{
	"second", "seconds", "minute", "minutes", "hour", "hours",
	"day", "days", "week", "weeks", "month", "months", "year", "years",
}

// zoneOffsets maps abbreviations to seconds east of UTC. "cst" is China
// Standard Time; the corpus is tuned for Chinese-language sources.
var zoneOffsets = map[string]int{
	"utc":  0,
	"gmt":  0,
	"z":    0,
	"wet":  0,
	"bst":  1 * 3600,
	"cet":  1 * 3600,
	"eet":  2 * 3600,
	"msk":  3 * 3600,
	"ist":  5*3600 + 1800,
	"ict":  7 * 3600,
	"cst":  8 * 3600,
	"hkt":  8 * 3600,
	"sgt":  8 * 3600,
	"jst":  9 * 3600,
	"kst":  9 * 3600,
	"aest": 10 * 3600,
	"nzst": 12 * 3600,
	"hast": -10 * 3600,
	"akst": -9 * 3600,
	"pst":  -8 * 3600,
	"mst":  -7 * 3600,
	"est":  -5 * 3600,
	"edt":  -4 * 3600,
}

// Canonical relative units produced by Relative.
const (
	UnitSecond = "second ago"
	UnitMinute = "minute ago"
	UnitHour   = "hour ago"
	UnitDay    = "day ago"
	UnitWeek   = "week ago"
	UnitMonth  = "month ago"
	UnitYear   = "year ago"
	UnitNow    = "now"
)

var relativeWords = map[string][]string{
	UnitSecond: {
		"second ago", "seconds ago", "sec ago", "secs ago",
		"秒前", "秒钟前", "秒鐘前", "초 전", "วินาทีที่แล้ว", "giây trước",
	},
	UnitMinute: {
		"minute ago", "minutes ago", "min ago", "mins ago",
		"分钟前", "分鐘前", "分前", "분 전", "นาทีที่แล้ว", "phút trước",
	},
	UnitHour: {
		"hour ago", "hours ago", "hr ago", "hrs ago",
		"小时前", "小時前", "个小时前", "個小時前", "時間前", "시간 전", "ชั่วโมงที่แล้ว", "giờ trước",
	},
	UnitDay: {
		"day ago", "days ago",
		"天前", "日前", "일 전", "วันที่แล้ว", "ngày trước",
	},
	UnitWeek: {
		"week ago", "weeks ago",
		"周前", "週前", "星期前", "个星期前", "個星期前", "週間前", "주 전", "สัปดาห์ที่แล้ว", "tuần trước",
	},
	UnitMonth: {
		"month ago", "months ago",
		"个月前", "個月前", "月前", "ヶ月前", "か月前", "カ月前", "개월 전", "달 전", "เดือนที่แล้ว", "tháng trước",
	},
	UnitYear: {
		"year ago", "years ago",
		"年前", "년 전", "ปีที่แล้ว", "năm trước",
	},
}

// instantWords resolve to the current time when no number accompanies them.
var instantWords = []string{
	"just now", "now", "刚刚", "剛剛", "刚才", "剛才", "たった今", "방금", "เมื่อสักครู่", "vừa xong",
}

// numericMonthWords expands "1月".."12月" (with and without zero padding)
// for every numeric suffix.
func numericMonthWords(month int) []string {
	var words []string
	for _, suffix := range numericMonthSuffixes {
		words = append(words, fmt.Sprintf("%d%s", month, suffix))
		if month < 10 {
			words = append(words, fmt.Sprintf("%02d%s", month, suffix))
		}
	}
	return words
}
