package catalog

func javascriptSets() []*Set {
	return []*Set{jsBeginner(), jsIntermediate(), jsAdvanced()}
}

func jsBeginner() *Set {
	return &Set{
		Language: "javascript",
		Level:    LevelBeginner,
		Exercises: []Exercise{
			{
				Title:       "Basic Function and DOM",
				Description: "Greet the user by name.",
				Task:        "Write a greet() function that asks for a name with prompt() and writes a greeting into the page with textContent",
				InitialCode: "// Write your greet function\n",
				Solution:    "function greet() {\n  const name = prompt(\"What is your name?\");\n  document.getElementById(\"output\").textContent = \"Hello, \" + name + \"!\";\n}",
				Points:      10,
				Hints: []string{
					"prompt() returns what the user typed",
					"textContent sets an element's text",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `function\s+greet\s*\(\s*\)`) &&
						has(c, `prompt\s*\([^)]*\)`) &&
						has(c, `textcontent\s*=`)
				},
			},
			{
				Title:       "Numbers and Math",
				Description: "Add two user-supplied numbers.",
				Task:        "Write a calculate() function that converts two input values with Number() and adds them",
				InitialCode: "// Write your calculate function\n",
				Solution:    "function calculate() {\n  const a = Number(document.getElementById(\"a\").value);\n  const b = Number(document.getElementById(\"b\").value);\n  return a + b;\n}",
				Points:      10,
				Hints: []string{
					"Input values are strings until converted",
					"Number() parses a numeric string",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `function\s+calculate\s*\(\s*\)`) &&
						has(c, `number\s*\(`) &&
						has(c, `[+]`)
				},
			},
			{
				Title:       "Strings and Text",
				Description: "Reverse a string.",
				Task:        "Write a reverseText() function that reverses a string using split(''), reverse() and join('')",
				InitialCode: "// Write your reverseText function\n",
				Solution:    "function reverseText(s) {\n  return s.split(\"\").reverse().join(\"\");\n}",
				Points:      10,
				Hints: []string{
					"split('') turns a string into characters",
					"join('') glues them back together",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `function\s+reversetext\s*\(`) &&
						has(c, `split\s*\(\s*['"]['"]\s*\).*?reverse\s*\(\s*\)`) &&
						has(c, `join\s*\(\s*['"]['"]\s*\)`)
				},
			},
			{
				Title:       "Conditionals",
				Description: "Check whether a user is an adult.",
				Task:        "Write a checkAge() function that uses an if statement to test whether age >= 18",
				InitialCode: "// Write your checkAge function\n",
				Solution:    "function checkAge(age) {\n  if (age >= 18) {\n    return \"adult\";\n  }\n  return \"minor\";\n}",
				Points:      10,
				Hints: []string{
					"if (condition) { ... } runs code conditionally",
					"Compare with >=",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `function\s+checkage\s*\(`) &&
						has(c, `if\s*\([^)]*\)`) &&
						has(c, `>=[^=]?\s*18`)
				},
			},
		},
	}
}

func jsIntermediate() *Set {
	return &Set{
		Language: "javascript",
		Level:    LevelIntermediate,
		Exercises: []Exercise{
			{
				Title:       "Array Methods",
				Description: "Transform a list of numbers.",
				Task:        "Parse the numbers with Number(), keep only the even ones with filter() and double them with map()",
				InitialCode: "// Transform the values array\n",
				Solution:    "const doubled = values\n  .map(v => Number(v))\n  .filter(n => n % 2 === 0)\n  .map(n => n * 2);",
				Points:      15,
				Hints: []string{
					"filter keeps elements that pass a test",
					"map transforms every element",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `filter\s*\(`) &&
						has(c, `map\s*\(`) &&
						has(c, `number\s*\(`)
				},
			},
			{
				Title:       "Object Methods",
				Description: "Model a person with a constructor and a method.",
				Task:        "Create a Person with new, give it a getFullName method using this, and call person.getFullName()",
				InitialCode: "// Build the Person object\n",
				Solution:    "function Person(first, last) {\n  this.first = first;\n  this.last = last;\n}\nPerson.prototype.getFullName = function () {\n  return this.first + \" \" + this.last;\n};\nconst person = new Person(\"Ada\", \"Lovelace\");\nperson.getFullName();",
				Points:      15,
				Hints: []string{
					"new Person(...) constructs an instance",
					"this refers to the instance inside methods",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `new\s+person`) &&
						has(c, `person\.getfullname`) &&
						has(c, `this\.`)
				},
			},
			{
				Title:       "Event Handlers",
				Description: "Wire up interactive buttons.",
				Task:        "Register at least two addEventListener handlers and call preventDefault() in a submit handler",
				InitialCode: "// Register your event handlers\n",
				Solution:    "form.addEventListener(\"submit\", e => {\n  e.preventDefault();\n});\nbutton.addEventListener(\"click\", () => {\n  counter++;\n});",
				Points:      15,
				Hints: []string{
					"addEventListener(type, handler) attaches a listener",
					"preventDefault() stops the browser's default action",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return hasSub(c, "addeventlistener") &&
						hasSub(c, "preventdefault") &&
						count(c, `addeventlistener`) >= 2
				},
			},
			{
				Title:       "Form Validation",
				Description: "Validate an email and password before submit.",
				Task:        "Check the email contains an @, check the password length, and show problems via an error element's textContent",
				InitialCode: "// Validate the form fields\n",
				Solution:    "if (!email.includes(\"@\")) {\n  error.textContent = \"Invalid email\";\n} else if (password.length < 8) {\n  error.textContent = \"Password too short\";\n}",
				Points:      15,
				Hints: []string{
					"includes('@') is a cheap email sanity check",
					"length tells you how long the password is",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `email.*?@`) &&
						has(c, `password.*?length`) &&
						has(c, `error.*?textcontent`)
				},
			},
		},
	}
}

func jsAdvanced() *Set {
	return &Set{
		Language: "javascript",
		Level:    LevelAdvanced,
		Exercises: []Exercise{
			{
				Title:       "Async/Await and API Calls",
				Description: "Fetch data from an API safely.",
				Task:        "Write an async function that awaits fetch() inside a try/catch block",
				InitialCode: "// Write your async loader\n",
				Solution:    "async function loadUsers() {\n  try {\n    const res = await fetch(\"/api/users\");\n    return await res.json();\n  } catch (err) {\n    console.error(err);\n  }\n}",
				Points:      20,
				Hints: []string{
					"await only works inside async functions",
					"Wrap awaited calls in try/catch",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `async\s+function`) &&
						has(c, `await\s+fetch`) &&
						has(c, `try\s*{.*?}\s*catch`)
				},
			},
			{
				Title:       "Promise Chaining",
				Description: "Coordinate multiple promises.",
				Task:        "Chain at least two .then() calls with a .catch() handler, and combine requests with Promise.all()",
				InitialCode: "// Chain your promises\n",
				Solution:    "Promise.all([fetch(\"/a\"), fetch(\"/b\")])\n  .then(([a, b]) => Promise.all([a.json(), b.json()]))\n  .then(([dataA, dataB]) => render(dataA, dataB))\n  .catch(err => console.error(err));",
				Points:      20,
				Hints: []string{
					"Each .then returns a new promise",
					"Promise.all resolves when every input resolves",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `\.then\s*\(.*?\).*?\.then\s*\(`) &&
						has(c, `\.catch\s*\(`) &&
						has(c, `promise\.all\s*\(`)
				},
			},
			{
				Title:       "Object-Oriented Programming",
				Description: "Build a class hierarchy.",
				Task:        "Define a Shape class, extend it with a subclass that calls super() in its constructor",
				InitialCode: "// Define your classes\n",
				Solution:    "class Shape {\n  constructor(name) {\n    this.name = name;\n  }\n}\nclass Circle extends Shape {\n  constructor(r) {\n    super(\"circle\");\n    this.r = r;\n  }\n}",
				Points:      20,
				Hints: []string{
					"extends sets up inheritance",
					"Subclass constructors must call super() first",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `class\s+shape`) &&
						has(c, `extends\s+shape`) &&
						has(c, `super\s*\(`)
				},
			},
			{
				Title:       "Custom Error Handling",
				Description: "Create and handle a custom error type.",
				Task:        "Define a custom Error subclass, throw new it on bad input and handle it in a catch block",
				InitialCode: "// Define and use your error class\n",
				Solution:    "class ValidationError extends Error {\n  constructor(msg) {\n    super(msg);\n    this.name = \"ValidationError\";\n  }\n}\ntry {\n  throw new ValidationError(\"bad input\");\n} catch (err) {\n  console.error(err.name, err.message);\n}",
				Points:      20,
				Hints: []string{
					"Extend Error to keep stack traces",
					"throw new YourError(...) raises it",
				},
				Validate: func(code string) bool {
					c := Normalize(code)
					return has(c, `class.*?error`) &&
						has(c, `throw\s+new`) &&
						has(c, `catch\s*\(.*?\)\s*{`)
				},
			},
		},
	}
}
