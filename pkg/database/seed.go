package database

import "codista_lms/internal/model"

// SeedCourses is the bundled catalog. The same titles back the client's
// offline seed set, so demo installs look identical on- and offline.
var SeedCourses = []model.Course{
	{
		Title:          "Complete Python Bootcamp",
		Description:    "Learn Python from scratch to advanced concepts. Includes Django and Flask.",
		VideoURL:       "https://www.youtube.com/watch?v=_uQrJ0TkZlc",
		Category:       "Python",
		InstructorName: "Sarah Smith",
	},
	{
		Title:          "The Complete JavaScript Course 2024",
		Description:    "Master modern JavaScript (ES6+) from the beginning to advanced topics like closures and promises.",
		VideoURL:       "https://www.youtube.com/watch?v=uDwSnnhl1Ng",
		Category:       "JavaScript",
		InstructorName: "John Doe",
	},
	{
		Title:          "Java Programming Masterclass",
		Description:    "Learn Java In-Depth: Data Structures, Algorithms, and OOP principles.",
		VideoURL:       "https://www.youtube.com/watch?v=eIrMbAQSU34",
		Category:       "Java",
		InstructorName: "James Gosling Fan",
	},
	{
		Title:          "Beginning C++ Programming",
		Description:    "Modern C++ features, STL, and game development fundamentals.",
		VideoURL:       "https://www.youtube.com/watch?v=18c3MTX0PK0",
		Category:       "C++",
		InstructorName: "Bjarne S.",
	},
	{
		Title:          "Go: The Complete Developer's Guide",
		Description:    "Master the fundamentals and advanced features of the Go (Golang) programming language.",
		VideoURL:       "https://www.youtube.com/watch?v=YS4e4q9oBaU",
		Category:       "Go",
		InstructorName: "Alice Wonder",
	},
	{
		Title:          "iOS & Swift - The Complete iOS App Development Bootcamp",
		Description:    "From beginner to iOS App Developer with just one course.",
		VideoURL:       "https://www.youtube.com/watch?v=comQ1-x2a1Q",
		Category:       "Swift",
		InstructorName: "Angela Yu Fan",
	},
	{
		Title:          "PHP for Beginners - Become a PHP Master",
		Description:    "Learn everything you need to become a professional PHP developer.",
		VideoURL:       "https://www.youtube.com/watch?v=OK_JCtrrv-c",
		Category:       "PHP",
		InstructorName: "Elephant Dev",
	},
	{
		Title:          "C# Basics for Beginners: Learn C# Fundamentals by Coding",
		Description:    "Master C# fundamentals for Unity game development and .NET applications.",
		VideoURL:       "https://www.youtube.com/watch?v=GhQdlIFylQ8",
		Category:       "C#",
		InstructorName: "Microsoft MVP",
	},
	{
		Title:          "Understanding TypeScript",
		Description:    "Don't limit the Usage of TypeScript to Angular! Learn the basics, its features, workflows and how to use it.",
		VideoURL:       "https://www.youtube.com/watch?v=BwuLxPH8IDs",
		Category:       "TypeScript",
		InstructorName: "John Doe",
	},
	{
		Title:          "The Complete SQL Bootcamp",
		Description:    "Learn to read and write complex queries to a database using PostgreSQL.",
		VideoURL:       "https://www.youtube.com/watch?v=HXV3zeQKqGY",
		Category:       "SQL",
		InstructorName: "Data Wizard",
	},
}
