package constants

const (
	// ProjectPlaceholder is replaced with the project name when a template is rendered.
	ProjectPlaceholder = "{project}"

	DefaultTemplate = "<p>โครงการ: {project} ประกอบไปด้วยผลการดำเนินงาน ดังนี้</p><ol><li></li><li></li><li></li></ol>"

	DefaultMorningTemplate = "{name}\nงานประจำวันที่ {date}\n- "

	// DraftSeparatorHTML and DraftSeparatorText sit between consecutive projects in a draft.
	DraftSeparatorHTML = "<p><br></p>"
	DraftSeparatorText = "\n\n"

	DeletedProjectName = "โครงการที่ถูกลบ"

	// Profile fallbacks applied by the settings form
	DefaultUserName  = "ผู้ใช้"
	DefaultUserRole  = "พนักงาน"
	DefaultWorkplace = "สำนักงาน"

	// Morning message placeholders for an empty profile
	MorningNamePlaceholder      = "{ชื่อ-นามสกุล}"
	MorningRolePlaceholder      = "{ตำแหน่ง}"
	MorningWorkplacePlaceholder = "{สถานที่ปฏิบัติงาน}"

	// Morning preview sample values
	MorningSampleName      = "สมชาย ใจดี"
	MorningSampleRole      = "เจ้าหน้าที่พัฒนาโปรแกรม"
	MorningSampleWorkplace = "ศูนย์เทคโนโลยีสารสนเทศ"
)
