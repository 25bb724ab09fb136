package catalog

var courses = []Course{
	{
		ID:          "1",
		Title:       "Introduction to Web Development",
		Description: "Learn the fundamentals of web development including HTML, CSS, and JavaScript. This course will give you a solid foundation for building modern web applications.",
		ImageURL:    "https://images.pexels.com/photos/270348/pexels-photo-270348.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      false,
		DocumentURL: "https://www.w3.org/WAI/demos/bad/after/documents/Web_Accessibility_Intro.pdf",
		Duration:    "8 hours",
		Lessons:     24,
		Instructor:  "Alex Johnson",
		Level:       LevelBeginner,
	},
	{
		ID:          "2",
		Title:       "Advanced JavaScript Concepts",
		Description: "Dive deep into JavaScript with advanced concepts like closures, promises, async/await, and design patterns. Take your JS skills to the next level.",
		ImageURL:    "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      true,
		Duration:    "12 hours",
		Lessons:     36,
		Instructor:  "Sarah Miller",
		Level:       LevelAdvanced,
	},
	{
		ID:          "3",
		Title:       "UI/UX Design Principles",
		Description: "Master the principles of user interface and user experience design. Learn to create beautiful, intuitive, and user-friendly digital products.",
		ImageURL:    "https://images.pexels.com/photos/196645/pexels-photo-196645.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      false,
		DocumentURL: "https://www.cs.uic.edu/~taipeics/UX-in-a-nutshell.pdf",
		Duration:    "10 hours",
		Lessons:     28,
		Instructor:  "David Wilson",
		Level:       LevelIntermediate,
	},
	{
		ID:          "4",
		Title:       "React Native Masterclass",
		Description: "Build cross-platform mobile apps using React Native. This comprehensive course covers everything from setup to deployment.",
		ImageURL:    "https://images.pexels.com/photos/977296/pexels-photo-977296.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      true,
		Duration:    "15 hours",
		Lessons:     42,
		Instructor:  "Emma Thompson",
		Level:       LevelIntermediate,
	},
	{
		ID:          "5",
		Title:       "Database Design & SQL",
		Description: "Learn how to design efficient databases and write powerful SQL queries. This course covers relational database concepts and practical SQL skills.",
		ImageURL:    "https://images.pexels.com/photos/270360/pexels-photo-270360.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      false,
		DocumentURL: "https://www.guru99.com/pdf/database-design-all.pdf",
		Duration:    "9 hours",
		Lessons:     26,
		Instructor:  "Michael Brown",
		Level:       LevelBeginner,
	},
	{
		ID:          "6",
		Title:       "Machine Learning Fundamentals",
		Description: "An introduction to machine learning concepts and algorithms. Learn how to build and train models for classification, regression, and clustering.",
		ImageURL:    "https://images.pexels.com/photos/373543/pexels-photo-373543.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      true,
		Duration:    "20 hours",
		Lessons:     48,
		Instructor:  "Jessica Lee",
		Level:       LevelAdvanced,
	},
	{
		ID:          "7",
		Title:       "Responsive Web Design",
		Description: "Master the art of creating websites that look great on any device. Learn about media queries, flexible grids, and responsive images.",
		ImageURL:    "https://images.pexels.com/photos/1029757/pexels-photo-1029757.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      false,
		DocumentURL: "https://www.academia.edu/32715755/Responsive_Web_Design_with_HTML5_and_CSS3_Second_Edition",
		Duration:    "7 hours",
		Lessons:     20,
		Instructor:  "Ryan Garcia",
		Level:       LevelBeginner,
	},
	{
		ID:          "8",
		Title:       "Cloud Computing with AWS",
		Description: "Learn to build, deploy, and manage applications on Amazon Web Services. Master services like EC2, S3, Lambda, and more.",
		ImageURL:    "https://images.pexels.com/photos/1148820/pexels-photo-1148820.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Locked:      true,
		Duration:    "14 hours",
		Lessons:     38,
		Instructor:  "Chris Taylor",
		Level:       LevelIntermediate,
	},
}
