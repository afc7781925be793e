package models

// Ключи страниц
const (
	PageMain  = "main"
	PageAbout = "about"
)

// SingletonID — единственная строка в каждой таблице контента.
const SingletonID = 1

// Content: плоский набор полей страницы: колонка -> значение.
type Content map[string]string

// Field: одно редактируемое поле: имя в форме и колонка в БД.
type Field struct {
	Form   string
	Column string
	Media  bool // ссылка на картинку/видео
}

// Page описывает таблицу-синглтон с контентом одной страницы.
type Page struct {
	Key    string
	Title  string
	Table  string
	Fields []Field
}

// Columns в порядке объявления полей.
func (p Page) Columns() []string {
	cols := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		cols[i] = f.Column
	}
	return cols
}

func text(name string) Field  { return Field{Form: name, Column: name} }
func media(name string) Field { return Field{Form: name, Column: name, Media: true} }

// MainPage — подробная схема главной страницы (47 полей).
var MainPage = Page{
	Key:   PageMain,
	Title: "Main Page",
	Table: "main_page_content",
	Fields: []Field{
		text("navlink1"), text("navlink2"), text("navlink3"), text("navlink4"),
		text("slide1"), text("slide2"), text("slide3"),
		text("abouth1"), text("aboutp"),
		text("servicesh1"),
		text("servicecardh2_1"), text("servicecardp1"),
		text("servicecardh2_2"), text("servicecardp2"),
		text("servicecardh2_3"), text("servicecardp3"),
		text("seemorebtn"),
		text("advantagesh1"),
		text("advantagecardh1_1"), text("advantagecardp1"),
		text("advantagecardh1_2"), text("advantagecardp2"),
		text("advantagecardh1_3"), text("advantagecardp3"),
		text("qualityh1"),
		text("contacth1"), text("email"), text("phone"),
		text("calluslink"), text("callustext"),
		text("newsh1"),
		text("newcardh2_1"), text("newcardp1"),
		text("newcardh2_2"), text("newcardp2"),
		text("newcardh2_3"), text("newcardp3"),
		text("footerh1"), text("footerp"),
		media("img1"), media("img2"), media("img3"), media("img4"),
		media("img5"), media("img6"), media("img7"),
		media("video"),
	},
}

// AboutPage — страница «О нас». В форме поля в camelCase, в БД в нижнем регистре.
var AboutPage = Page{
	Key:   PageAbout,
	Title: "About Us",
	Table: "about_page_content",
	Fields: []Field{
		{Form: "h1About", Column: "h1about"},
		{Form: "p1About", Column: "p1about"},
		{Form: "p2About", Column: "p2about"},
	},
}

// Pages: все страницы по ключу.
var Pages = map[string]Page{
	PageMain:  MainPage,
	PageAbout: AboutPage,
}

// DefaultContent — то, что bootstrap кладёт в пустую таблицу.
func DefaultContent(p Page) Content {
	c := make(Content, len(p.Fields))
	switch p.Key {
	case PageAbout:
		c["h1about"] = "About Us"
		c["p1about"] = "I created this website and my name is Soltan Alikhan..."
		c["p2about"] = "There is testing text in About Page"
	default:
		for _, f := range p.Fields {
			c[f.Column] = "TEXT"
		}
	}
	return c
}
