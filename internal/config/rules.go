package config

// DefaultRules is the stock cleanup rule list. It is configuration data, not
// logic: --rules or a config file replaces it wholesale, and the rule engine
// never consults it.
var DefaultRules = []string{
	"ozon.ru",
	"news@news.ozon.ru",
	"linkedin.com",
	"snob.ru",
	"vk.com",
	"finam.ru",
	"mvideo.ru",
	"aliexpress.ru",
	"hh.ru",
	"letu.ru",
	"afisha.ru",
	"cdek.shopping",
	"alltime.ru",
	"avito.ru",
	"onetwotrip.com",
	"tricolortv.ru",
	"flocktory.com",
	"pobeda.aero",
	"mail.ivd.ru",
	"skyeng.ru",
	"globalsources.com",
	"artromost.ru",
	"livejournal.com",
	"sportmaster.ru",
	"medium.com",
	"litres.ru",
	"mos.ru",
	"ticketsold.ru",
	"sdelaimebel.ru",
	"electronix.ru",
	"smart-t.ru",
	"rusconcert.net",
	"vigoda.ru",
	"idm.institute",
	"intermeda.ru",
	"strawberrynet.com",
	"auto.ru",
	"ticketland.ru",
	"komus.ru",
	"stockmann.ru",
	"*reddit*@privaterelay.appleid.com",
}
