package catalog

func pythonSets() []*Set {
	return []*Set{pythonBeginner(), pythonIntermediate(), pythonAdvanced()}
}

func pythonBeginner() *Set {
	return &Set{
		Language: "python",
		Level:    LevelBeginner,
		Exercises: []Exercise{
			{
				Title:       "Hello, Python!",
				Description: "Write a simple program to print a greeting",
				Task:        "Write a Python program that prints 'Hello, World!'",
				InitialCode: "# Write your code below\n",
				Solution:    `print("Hello, World!")`,
				Points:      10,
				Hints: []string{
					"Use the print() function to output text",
					"Put your message inside quotes",
					"Don't forget the parentheses after print",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "print") && hasSub(c, `"hello, world!"`)
				},
			},
			{
				Title:       "Your First Print Statement",
				Description: "Write a Python program to print a message",
				Task:        "Write a Python program that prints 'I love coding!'",
				InitialCode: "# Write your code below\n",
				Solution:    `print("I love coding!")`,
				Points:      10,
				Hints: []string{
					"Use the print() function to output text",
					"Put your message inside quotes",
					"Don't forget the parentheses after print",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "print") && hasSub(c, `"i love coding!"`)
				},
			},
			{
				Title:       "Working with Variables",
				Description: "Create variables and print them",
				Task:        "Create variables 'name' with value 'Alice' and 'age' with value 25, then print both of them",
				InitialCode: "# Create your variables here\n",
				Solution:    "name = \"Alice\"\nage = 25\nprint(name, age)",
				Points:      10,
				Hints: []string{
					"Use the = operator to assign values to variables",
					"Create a variable 'name' with a string value",
					"Create a variable 'age' with a number value",
					"Use print() to display both variables separated by a comma",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "name") &&
						hasSub(c, "alice") &&
						hasSub(c, "age") &&
						hasSub(c, "25") &&
						hasSub(c, "print")
				},
			},
			{
				Title:       "Creating Variables",
				Description: "Create and use variables in Python",
				Task:        "Create a variable 'favorite_food' with your favorite food and print it",
				InitialCode: "# Create and print your favorite food\n",
				Solution:    "favorite_food = \"pizza\"\nprint(favorite_food)",
				Points:      10,
				Hints: []string{
					"Use the = operator to assign a value to a variable",
					"Variable names should be lowercase with underscores",
					"Use print() to display the variable",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "favorite_food") &&
						hasSub(c, "print") &&
						hasSub(c, "=")
				},
			},
		},
	}
}

func pythonIntermediate() *Set {
	return &Set{
		Language: "python",
		Level:    LevelIntermediate,
		Exercises: []Exercise{
			{
				Title:       "List Comprehension",
				Description: "Create a list using list comprehension",
				Task:        "Write code that creates a list of squares from numbers 1 to 5 using list comprehension",
				InitialCode: "# Write your code below\n",
				Solution:    "numbers = [1, 2, 3, 4, 5]\nsquares = [x**2 for x in numbers]\nprint(squares)",
				Points:      15,
				Hints: []string{
					"List comprehension creates a new list by applying an operation to each element",
					"Use [x**2 for x in numbers] to square each element",
					"x**2 means x raised to the power of 2",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "[") &&
						hasSub(c, "]") &&
						hasSub(c, "for") &&
						hasSub(c, "**") &&
						hasSub(c, "print")
				},
			},
			{
				Title:       "Function with Loop",
				Description: "Write a function that uses a loop",
				Task:        "Write a function called 'multiply_by_two' that takes a list and returns a new list with each element multiplied by 2",
				InitialCode: "# Write your function here\n",
				Solution:    "def multiply_by_two(numbers):\n    result = []\n    for num in numbers:\n        result.append(num * 2)\n    return result",
				Points:      15,
				Hints: []string{
					"Use 'def' to define a function",
					"Use a for loop to iterate through the list",
					"Use append() to add items to the result list",
					"Don't forget to return the result",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "def multiply_by_two") &&
						hasSub(c, "*") &&
						(hasSub(c, "append") || hasSub(c, "return")) &&
						hasSub(c, "for")
				},
			},
			{
				Title:       "Dictionary Operations",
				Description: "Working with dictionaries",
				Task:        "Create a dictionary with keys 'name', 'age', 'grade' and print the number of items in it",
				InitialCode: "# Write your code below\n",
				Solution:    "student = {\"name\": \"Alice\", \"age\": 20, \"grade\": \"A\"}\nprint(len(student))",
				Points:      15,
				Hints: []string{
					"The len() function counts items in a collection",
					"A dictionary stores key-value pairs",
					"Create a dictionary with student information",
					"Print the length of the dictionary",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "{") &&
						hasSub(c, "}") &&
						hasSub(c, "len") &&
						hasSub(c, "print")
				},
			},
			{
				Title:       "Finding Maximum in List",
				Description: "Write a function to find the maximum value",
				Task:        "Write a function called 'find_max' that takes a list of numbers and returns the maximum value",
				InitialCode: "# Write your function here\n",
				Solution:    "def find_max(numbers):\n    max_num = numbers[0]\n    for num in numbers:\n        if num > max_num:\n            max_num = num\n    return max_num",
				Points:      15,
				Hints: []string{
					"Start with the first element as max",
					"Compare each number with the current max",
					"Update max if you find a larger number",
					"Return the maximum value",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "def find_max") &&
						(hasSub(c, ">") || hasSub(c, "max")) &&
						hasSub(c, "return") &&
						hasSub(c, "for")
				},
			},
		},
	}
}

func pythonAdvanced() *Set {
	return &Set{
		Language: "python",
		Level:    LevelAdvanced,
		Exercises: []Exercise{
			{
				Title:       "Decorators",
				Description: "Create and use a decorator function",
				Task:        "Write a decorator function that wraps another function and prints 'Before' before execution and 'After' after execution",
				InitialCode: "# Write your decorator here\n",
				Solution:    "def decorator(func):\n    def wrapper():\n        print(\"Before\")\n        func()\n        print(\"After\")\n    return wrapper\n\n@decorator\ndef greet():\n    print(\"Hello\")\n\ngreet()",
				Points:      20,
				Hints: []string{
					"Decorators wrap a function to modify its behavior",
					"The @decorator syntax applies the decorator",
					"The wrapper function executes before and after the original function",
					"Use nested functions for decorators",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "def") &&
						hasSub(c, "@") &&
						hasSub(c, "wrapper") &&
						hasSub(c, "return")
				},
			},
			{
				Title:       "Class with Methods",
				Description: "Creating a class with multiple methods",
				Task:        "Create a class 'Person' with name and age attributes, and a method greet() that returns a greeting",
				InitialCode: "# Define your class here\n",
				Solution:    "class Person:\n    def __init__(self, name, age):\n        self.name = name\n        self.age = age\n    \n    def greet(self):\n        return f\"Hello, I'm {self.name} and I'm {self.age} years old\"",
				Points:      20,
				Hints: []string{
					"Use 'class Person:' to define the class",
					"Use __init__ to initialize attributes",
					"Store name and age as self.name and self.age",
					"Create a greet() method that returns a string",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "class person") &&
						hasSub(c, "def __init__") &&
						hasSub(c, "self") &&
						hasSub(c, "def greet") &&
						hasSub(c, "return")
				},
			},
			{
				Title:       "Generators",
				Description: "Working with generator functions",
				Task:        "Write a generator function that yields numbers from 0 to n-1",
				InitialCode: "# Write your generator here\n",
				Solution:    "def count_up(n):\n    i = 0\n    while i < n:\n        yield i\n        i += 1\n\nfor num in count_up(3):\n    print(num)",
				Points:      20,
				Hints: []string{
					"Generators use 'yield' to produce values one at a time",
					"yield pauses and returns a value, remembering where it left off",
					"Create a while loop that yields values",
					"Each value is printed on a new line",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "def") &&
						hasSub(c, "yield") &&
						hasSub(c, "for") &&
						hasSub(c, "print")
				},
			},
			{
				Title:       "Exception Handling",
				Description: "Handle errors gracefully",
				Task:        "Write a function that divides two numbers and handles the case when dividing by zero",
				InitialCode: "# Write your function here\n",
				Solution:    "def safe_divide(a, b):\n    try:\n        return a / b\n    except ZeroDivisionError:\n        return \"Cannot divide by zero\"",
				Points:      20,
				Hints: []string{
					"Use try-except blocks to handle errors",
					"ZeroDivisionError occurs when dividing by 0",
					"Return a message if an error is caught",
					"Otherwise return the result of the division",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "def safe_divide") &&
						hasSub(c, "try") &&
						hasSub(c, "except") &&
						hasSub(c, "return")
				},
			},
		},
	}
}
