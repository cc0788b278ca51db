package quiz

// Banks keys quizzes by course category. "Default" backs any course
// no rule resolves.
var Banks = map[string][]Question{
	"Python": {
		{ID: 1, Question: "What is the correct file extension for Python files?", Options: []string{".py", ".pt", ".yt", ".pn"}, Answer: ".py"},
		{ID: 2, Question: "How do you create a variable in Python?", Options: []string{"x = 5", "var x = 5", "int x = 5", "variable x = 5"}, Answer: "x = 5"},
		{ID: 3, Question: "Which function is used to output text to the screen?", Options: []string{"print()", "echo()", "console.log()", "write()"}, Answer: "print()"},
		{ID: 4, Question: "How do you start a comment in Python?", Options: []string{"#", "//", "/*", "--"}, Answer: "#"},
		{ID: 5, Question: "Which collection is ordered, changeable, and allows duplicate members?", Options: []string{"List", "Tuple", "Set", "Dictionary"}, Answer: "List"},
	},
	"JavaScript": {
		{ID: 1, Question: "Which symbol is used for comments in JavaScript?", Options: []string{"//", "#", "<!--", "**"}, Answer: "//"},
		{ID: 2, Question: "Which keyword declares a variable that cannot be reassigned?", Options: []string{"const", "var", "let", "static"}, Answer: "const"},
		{ID: 3, Question: "What is the correct way to write a function in JavaScript?", Options: []string{"function myFunction()", "def myFunction()", "func myFunction()", "void myFunction()"}, Answer: "function myFunction()"},
		{ID: 4, Question: "How do you find the length of a string 'str'?", Options: []string{"str.length", "str.len", "str.size", "length(str)"}, Answer: "str.length"},
		{ID: 5, Question: "Which event occurs when the user clicks on an HTML element?", Options: []string{"onclick", "onchange", "onmouseover", "onmouseclick"}, Answer: "onclick"},
	},
	"Java": {
		{ID: 1, Question: "Which method is the entry point for a Java application?", Options: []string{"public static void main(String[] args)", "public void main()", "static void start()", "init()"}, Answer: "public static void main(String[] args)"},
		{ID: 2, Question: "Which data type is used to create a variable that should store text?", Options: []string{"String", "char", "Txt", "string"}, Answer: "String"},
		{ID: 3, Question: "How do you create an object in Java?", Options: []string{"new ClassName()", "ClassName()", "create ClassName()", "make ClassName()"}, Answer: "new ClassName()"},
		{ID: 4, Question: "Which keyword is used to inherit a class?", Options: []string{"extends", "implements", "inherits", "uses"}, Answer: "extends"},
		{ID: 5, Question: "Which statement is used to stop a loop?", Options: []string{"break", "stop", "return", "exit"}, Answer: "break"},
	},
	"C++": {
		{ID: 1, Question: "Which header file is required for input/output operations?", Options: []string{"<iostream>", "<stdio.h>", "<conio.h>", "<input>"}, Answer: "<iostream>"},
		{ID: 2, Question: "How do you insert comments in C++?", Options: []string{"//", "#", "<!--", "**"}, Answer: "//"},
		{ID: 3, Question: "Which operator is used to access members of a structure or class pointer?", Options: []string{"->", ".", ":", "::"}, Answer: "->"},
		{ID: 4, Question: "What is the size of an 'int' on most modern 64-bit systems?", Options: []string{"4 bytes", "2 bytes", "8 bytes", "1 byte"}, Answer: "4 bytes"},
		{ID: 5, Question: "Which keyword is used to define a class?", Options: []string{"class", "struct", "object", "type"}, Answer: "class"},
	},
	"Go": {
		{ID: 1, Question: "Which keyword is used to define a package?", Options: []string{"package", "module", "import", "pkg"}, Answer: "package"},
		{ID: 2, Question: "How do you declare a variable in Go?", Options: []string{"var x int", "int x", "x := int", "declare x int"}, Answer: "var x int"},
		{ID: 3, Question: "What is the entry point function in a Go program?", Options: []string{"main", "start", "init", "run"}, Answer: "main"},
		{ID: 4, Question: "Which loop is the only loop available in Go?", Options: []string{"for", "while", "do-while", "repeat"}, Answer: "for"},
		{ID: 5, Question: "How do you create a goroutine?", Options: []string{"go functionName()", "start functionName()", "async functionName()", "run functionName()"}, Answer: "go functionName()"},
	},
	"Swift": {
		{ID: 1, Question: "Which keyword is used to define a constant?", Options: []string{"let", "var", "const", "fixed"}, Answer: "let"},
		{ID: 2, Question: "What is used to handle optional values safely?", Options: []string{"if let / guard let", "try / catch", "check / unwrap", "exists"}, Answer: "if let / guard let"},
		{ID: 3, Question: "Which framework is primarily used for iOS UI?", Options: []string{"SwiftUI / UIKit", "React Native", "Flutter", "Cocoa"}, Answer: "SwiftUI / UIKit"},
		{ID: 4, Question: "How do you define a function in Swift?", Options: []string{"func name()", "function name()", "def name()", "void name()"}, Answer: "func name()"},
		{ID: 5, Question: "Which type represents a collection of key-value pairs?", Options: []string{"Dictionary", "Array", "Set", "Map"}, Answer: "Dictionary"},
	},
	"PHP": {
		{ID: 1, Question: "How do you start a PHP script?", Options: []string{"<?php", "<script>", "<php>", "<? "}, Answer: "<?php"},
		{ID: 2, Question: "Which symbol starts all variables in PHP?", Options: []string{"$", "@", "%", "#"}, Answer: "$"},
		{ID: 3, Question: "Which function outputs text?", Options: []string{"echo", "print_line", "write", "display"}, Answer: "echo"},
		{ID: 4, Question: "How do you access a query string parameter?", Options: []string{"$_GET['name']", "$_POST['name']", "$_REQUEST['name']", "$_QUERY['name']"}, Answer: "$_GET['name']"},
		{ID: 5, Question: "Which symbol is used to concatenate strings?", Options: []string{".", "+", "&", ","}, Answer: "."},
	},
	"C#": {
		{ID: 1, Question: "Which namespace is commonly used for basic system functions?", Options: []string{"System", "Std", "Core", "Basic"}, Answer: "System"},
		{ID: 2, Question: "How do you print to the console?", Options: []string{"Console.WriteLine()", "print()", "System.out.println()", "echo"}, Answer: "Console.WriteLine()"},
		{ID: 3, Question: "Which keyword creates a new object instance?", Options: []string{"new", "create", "make", "alloc"}, Answer: "new"},
		{ID: 4, Question: "What is the base class for all classes in .NET?", Options: []string{"Object", "Base", "Root", "System"}, Answer: "Object"},
		{ID: 5, Question: "Which symbol denotes a nullable type?", Options: []string{"?", "!", "*", "&"}, Answer: "?"},
	},
	"TypeScript": {
		{ID: 1, Question: "What is TypeScript?", Options: []string{"A superset of JavaScript", "A completely new language", "A database", "A CSS framework"}, Answer: "A superset of JavaScript"},
		{ID: 2, Question: "How do you specify a type for a variable?", Options: []string{"let x: number", "let x = number", "int x", "var x as number"}, Answer: "let x: number"},
		{ID: 3, Question: "Which keyword defines an interface?", Options: []string{"interface", "type", "struct", "class"}, Answer: "interface"},
		{ID: 4, Question: "Does TypeScript run directly in the browser?", Options: []string{"No, it must be compiled to JS", "Yes", "Only in Chrome", "Only with React"}, Answer: "No, it must be compiled to JS"},
		{ID: 5, Question: "What is 'any' type?", Options: []string{"Disables type checking", "A number type", "A string type", "An array"}, Answer: "Disables type checking"},
	},
	"SQL": {
		{ID: 1, Question: "What does SQL stand for?", Options: []string{"Structured Query Language", "Simple Query Language", "System Query Logic", "Standard Question List"}, Answer: "Structured Query Language"},
		{ID: 2, Question: "Which statement retrieves data from a database?", Options: []string{"SELECT", "GET", "EXTRACT", "OPEN"}, Answer: "SELECT"},
		{ID: 3, Question: "Which clause is used to filter records?", Options: []string{"WHERE", "FILTER", "WHEN", "IF"}, Answer: "WHERE"},
		{ID: 4, Question: "How do you sort results?", Options: []string{"ORDER BY", "SORT BY", "GROUP BY", "ALIGN"}, Answer: "ORDER BY"},
		{ID: 5, Question: "Which command inserts new data?", Options: []string{"INSERT INTO", "ADD NEW", "UPDATE", "CREATE"}, Answer: "INSERT INTO"},
	},
	"Default": {
		{ID: 1, Question: "What does HTML stand for?", Options: []string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyperlinks and Text Markup Language", "Home Tool Markup Language"}, Answer: "Hyper Text Markup Language"},
		{ID: 2, Question: "Which language is used for styling web pages?", Options: []string{"CSS", "HTML", "JavaScript", "PHP"}, Answer: "CSS"},
		{ID: 3, Question: "Which is not a JavaScript Framework?", Options: []string{"Django", "React", "Vue", "Angular"}, Answer: "Django"},
		{ID: 4, Question: "What does SQL stand for?", Options: []string{"Structured Query Language", "Strong Question Language", "Structured Question Language", "Simple Query Language"}, Answer: "Structured Query Language"},
		{ID: 5, Question: "What is Git?", Options: []string{"Version Control System", "Code Editor", "Programming Language", "Operating System"}, Answer: "Version Control System"},
	},
}
