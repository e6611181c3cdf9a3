package database

import "codelearn_backend/internal/model"

// defaultFeedbackTemplates 内置的判题提示语料，按 语言 × 难度 × 类别 组织
func defaultFeedbackTemplates() []model.FeedbackTemplate {
	var out []model.FeedbackTemplate
	add := func(language, level, category string, messages ...string) {
		for _, m := range messages {
			out = append(out, model.FeedbackTemplate{
				Language: language,
				Level:    level,
				Category: category,
				Message:  m,
				Enabled:  true,
			})
		}
	}

	add("html", "beginner", model.FeedbackSyntaxError,
		"⚠️ **HTML Syntax Error**: All opening tags must have closing tags. Every `<tag>` needs a corresponding `</tag>`.",
		"⚠️ **Tag Not Closed**: You have an unclosed tag. Check your `<p>`, `<div>`, `<section>` tags are properly closed.",
		"⚠️ **Invalid Nesting**: Tags are nested incorrectly. Block elements like `<div>` should contain inline elements like `<span>`.")
	add("html", "beginner", model.FeedbackHint,
		"💡 **HTML Structure**: Use `<h1>` for main headings, `<h2>-<h6>` for subheadings, and `<p>` for paragraphs.",
		"💡 **Semantic Tags**: Use `<header>`, `<nav>`, `<main>`, `<article>`, `<section>`, `<aside>`, `<footer>` for meaningful structure.",
		"💡 **Lists**: Use `<ul>` for unordered lists and `<ol>` for ordered lists with `<li>` items.")
	add("html", "beginner", model.FeedbackSuggestion,
		"✨ **Accessibility**: Add `alt` text to all images: `<img src='...' alt='description'>` for screen readers.",
		"✨ **Best Practice**: Use semantic HTML tags instead of generic `<div>` tags for better SEO and readability.",
		"✨ **Validation**: Check your HTML structure using online validators to catch hidden issues early.")

	add("html", "intermediate", model.FeedbackSyntaxError,
		"⚠️ **Attribute Error**: Attributes must be quoted. Use `<img src=\"image.jpg\">` not `<img src=image.jpg>`.",
		"⚠️ **Form Structure**: Forms need proper `<label>` elements connected to `<input>` fields using `for` and `id` attributes.",
		"⚠️ **Table Markup**: Table structure should be: `<table><thead><tr><th>` for headers and `<tbody><tr><td>` for data.")
	add("html", "intermediate", model.FeedbackHint,
		"💡 **Form Elements**: Use `<input type=\"text\">`, `<input type=\"email\">`, `<textarea>`, `<select>` for different field types.",
		"💡 **Label Association**: Connect labels properly: `<label for=\"userId\"><input id=\"userId\" type=\"text\"></label>`.",
		"💡 **Data Attributes**: Use `data-*` attributes to store custom data: `<div data-id=\"123\">` for JavaScript access.")
	add("html", "intermediate", model.FeedbackSuggestion,
		"✨ **Form Validation**: Add `required`, `pattern`, `minlength` attributes for client-side validation.",
		"✨ **Accessibility**: Use `aria-label` and `aria-describedby` for complex forms and interactive elements.",
		"✨ **Meta Tags**: Add metadata in `<head>`: viewport, charset, description for better page display.")

	add("html", "advanced", model.FeedbackSyntaxError,
		"⚠️ **SVG Nesting**: SVG elements need proper namespaces and valid XML structure within HTML.",
		"⚠️ **Microdata Syntax**: Schema.org microdata requires correct attribute syntax: `itemscope`, `itemtype`, `itemprop`.",
		"⚠️ **Custom Elements**: Web components must be hyphenated: `<my-component>` not `<mycomponent>`.")
	add("html", "advanced", model.FeedbackHint,
		"💡 **Web Components**: Create reusable elements with `<template>` and custom element definitions.",
		"💡 **Microdata**: Use schema.org markup (`itemscope`, `itemtype`, `itemprop`) for rich search results.",
		"💡 **Accessibility (WCAG)**: Use `aria-live` for dynamic content, `role` attributes for complex widgets.")
	add("html", "advanced", model.FeedbackSuggestion,
		"✨ **Performance**: Use `<link rel=\"preload\">` and `<link rel=\"prefetch\">` for resource optimization.",
		"✨ **PWA Integration**: Add `<link rel=\"manifest\">` for web app manifest and `<meta name=\"theme-color\">`.",
		"✨ **SEO Enhancement**: Implement Open Graph (`og:*`) and Twitter Card (`twitter:*`) meta tags for social sharing.")

	add("css", "beginner", model.FeedbackSyntaxError,
		"⚠️ **CSS Syntax**: Missing semicolon at end of property! Use `color: red;` with semicolon.",
		"⚠️ **Selector Error**: Incorrect selector syntax. Use `.classname` for classes and `#idname` for IDs.",
		"⚠️ **Property Value**: The CSS value is invalid. Check property names match standard CSS properties.")
	add("css", "beginner", model.FeedbackHint,
		"💡 **Colors**: Use color names (`red`, `blue`), hex (`#FF0000`), rgb (`rgb(255, 0, 0)`), or hsl values.",
		"💡 **Units**: CSS values need units: `px` for pixels, `%` for percentage, `em` for relative sizing.",
		"💡 **Selectors**: Target elements with `element`, `.class`, `#id`, `[attribute]` selectors.")
	add("css", "beginner", model.FeedbackSuggestion,
		"✨ **Class Usage**: Use multiple classes for flexibility: `<div class=\"box highlight\">` for easier styling.",
		"✨ **Font Styling**: Use `font-size`, `font-weight`, `font-family`, `text-align` together for text control.",
		"✨ **Spacing**: Use `margin` for outer space and `padding` for inner space around elements.")

	add("css", "intermediate", model.FeedbackSyntaxError,
		"⚠️ **Flexbox Property**: Unknown property for flex layout. Use `display: flex;` with `justify-content` and `align-items`.",
		"⚠️ **Media Query Syntax**: Media query needs parentheses: `@media (max-width: 768px) { }` not `@media max-width: 768px`.",
		"⚠️ **Pseudo-class Error**: Pseudo-classes need colon `:hover`, `:focus`, `:active` syntax.")
	add("css", "intermediate", model.FeedbackHint,
		"💡 **Flexbox**: Use `display: flex;` with `flex-direction`, `justify-content`, `align-items`, `gap` for layouts.",
		"💡 **Grid System**: Use `display: grid;` with `grid-template-columns: 1fr 1fr` for two-column layouts.",
		"💡 **Transitions**: Add smooth animations: `transition: all 0.3s ease;` on hover or focus states.")
	add("css", "intermediate", model.FeedbackSuggestion,
		"✨ **Responsive Design**: Use mobile-first approach with `@media (min-width: 768px)` for larger screens.",
		"✨ **CSS Variables**: Define reusable values: `--primary-color: #3498db;` then use `var(--primary-color)`.",
		"✨ **Accessibility**: Maintain color contrast (4.5:1), use focus states for keyboard navigation.")

	add("css", "advanced", model.FeedbackSyntaxError,
		"⚠️ **CSS Grid**: Invalid grid template syntax. Use `grid-template-areas` or `grid-template-columns/rows` correctly.",
		"⚠️ **Animation Keyframes**: `@keyframes` must have proper `from`, `to`, or `0%`, `100%` declarations.",
		"⚠️ **CSS Custom Properties**: Variable scope issue. Custom properties are inherited like normal properties.")
	add("css", "advanced", model.FeedbackHint,
		"💡 **CSS Grid Advanced**: Use `grid-auto-flow`, `grid-auto-rows`, `auto-fit`, `minmax()` for responsive grids.",
		"💡 **Animations**: Combine `@keyframes`, `animation-name`, `animation-duration`, `animation-timing-function` together.",
		"💡 **Filter Effects**: Use `filter: blur()`, `filter: brightness()`, `filter: drop-shadow()` for visual effects.")
	add("css", "advanced", model.FeedbackSuggestion,
		"✨ **Performance**: Use `transform` and `opacity` for animations instead of `left/top` for hardware acceleration.",
		"✨ **CSS Architecture**: Organize with BEM methodology: `.block__element--modifier` for maintainability.",
		"✨ **Modern CSS**: Use `clamp()` for responsive sizing, `aspect-ratio` for consistent proportions.")

	add("javascript", "beginner", model.FeedbackSyntaxError,
		"⚠️ **Function Syntax**: Incorrect function declaration. Use `function name() { }` or `const name = () => { }`.",
		"⚠️ **Missing Parentheses**: Function calls need parentheses: `myFunction()` not `myFunction`.",
		"⚠️ **Variable Declaration**: Use `const` by default, `let` for loop variables, avoid `var`.")
	add("javascript", "beginner", model.FeedbackHint,
		"💡 **Variables**: Declare with `const name = 'value';` to make your code safer and clearer.",
		"💡 **Arrays**: Create arrays with `[1, 2, 3]` and access items with index: `array[0]` gets first item.",
		"💡 **Objects**: Use objects for related data: `{ name: 'John', age: 30 }` and access with dot notation.")
	add("javascript", "beginner", model.FeedbackSuggestion,
		"✨ **DOM Access**: Use `document.getElementById()`, `document.querySelector()` to select HTML elements.",
		"✨ **Event Listeners**: Add interactivity with `element.addEventListener('click', function)` for clicks.",
		"✨ **Logging**: Use `console.log()` to debug and understand what your code is doing.")

	add("javascript", "intermediate", model.FeedbackSyntaxError,
		"⚠️ **Promise Chain**: `.then()` must return a value to pass to the next `.then()` in the chain.",
		"⚠️ **Async/Await**: `await` can only be used inside `async` functions. Mark the function with `async`.",
		"⚠️ **Arrow Function**: Missing arrow or wrong syntax. Use `() => { return value; }` or `() => value` for implicit return.")
	add("javascript", "intermediate", model.FeedbackHint,
		"💡 **Array Methods**: Use `.map()` to transform, `.filter()` to select, `.reduce()` to combine array items.",
		"💡 **Destructuring**: Extract values easily: `const { name, age } = person;` or `const [first, second] = array;`.",
		"💡 **Template Literals**: Use backticks for string interpolation: `Hello ${name}` instead of concatenation.")
	add("javascript", "intermediate", model.FeedbackSuggestion,
		"✨ **Error Handling**: Wrap async code in try-catch: `try { await fetchData(); } catch(error) { }`.",
		"✨ **Callback Patterns**: Prefer `async/await` over callback functions for cleaner, more readable code.",
		"✨ **Module Import**: Use `import` for code organization: `import { function } from './module.js';`")

	add("javascript", "advanced", model.FeedbackSyntaxError,
		"⚠️ **Closure Issue**: Variables in closures reference the outer scope. Be careful with loops and async code.",
		"⚠️ **Prototype Chain**: Incorrect prototype inheritance. Use `Object.create()` or `class extends` properly.",
		"⚠️ **Binding Context**: `this` binding issue. Use arrow functions `() => { }` to preserve context, or `.bind()`.")
	add("javascript", "advanced", model.FeedbackHint,
		"💡 **Design Patterns**: Use Factory pattern for object creation, Observer for event systems, Singleton for shared instances.",
		"💡 **Performance**: Implement debouncing for frequent events and memoization for expensive calculations.",
		"💡 **Generators**: Use `function*` and `yield` for lazy evaluation and memory-efficient iterations.")
	add("javascript", "advanced", model.FeedbackSuggestion,
		"✨ **TypeScript**: Add type safety with TypeScript interfaces and type annotations for larger projects.",
		"✨ **Testing**: Write unit tests with Jest or Vitest to catch bugs early and ensure code reliability.",
		"✨ **Code Quality**: Use ESLint and Prettier for consistent formatting and catching potential issues.")

	add("python", "beginner", model.FeedbackSyntaxError,
		"⚠️ **Indentation Error**: Python requires proper indentation. Use consistent spaces (4 spaces recommended) inside blocks.",
		"⚠️ **Function Definition**: Use `def function_name():` with colon and proper indentation for the function body.",
		"⚠️ **Missing Colon**: All control structures need colons: `if condition:`, `for item in list:`, `while True:`.")
	add("python", "beginner", model.FeedbackHint,
		"💡 **Print Output**: Use `print('Hello')` to display values on the console.",
		"💡 **Variables**: Assign with `name = 'John'` or `age = 25`. Python infers the type automatically.",
		"💡 **Lists**: Create with `[1, 2, 3]` and access items: `list[0]` for first, `list[-1]` for last.")
	add("python", "beginner", model.FeedbackSuggestion,
		"✨ **String Methods**: Use `.upper()`, `.lower()`, `.strip()`, `.split()` for string manipulation.",
		"✨ **Comments**: Add comments with `#` to explain your code: `# This calculates the total`.",
		"✨ **Input/Output**: Use `input('Prompt: ')` to get user input and `print()` to display results.")

	add("python", "intermediate", model.FeedbackSyntaxError,
		"⚠️ **Class Definition**: Use `class ClassName:` with proper indentation and `def __init__(self):` constructor.",
		"⚠️ **Self Reference**: Instance methods need `self` as first parameter: `def method(self, param):`.",
		"⚠️ **Import Statement**: Use `import module` or `from module import function` at the top of your file.")
	add("python", "intermediate", model.FeedbackHint,
		"💡 **List Comprehension**: Create lists concisely: `[x*2 for x in range(10)]` instead of loops.",
		"💡 **Dictionary Access**: Use `.get()` to safely access keys: `dict.get('key', default_value)`.",
		"💡 **String Formatting**: Use f-strings: `f'Hello {name}, you are {age}'` for cleaner output.")
	add("python", "intermediate", model.FeedbackSuggestion,
		"✨ **Exception Handling**: Use `try-except` blocks: `try: risky_code() except Exception as e: handle_error()`.",
		"✨ **Libraries**: Use `import requests` for HTTP, `import json` for data, `import csv` for files.",
		"✨ **Function Documentation**: Add docstrings: `\"\"\"This function does X.\"\"\"` for clarity.")

	add("python", "advanced", model.FeedbackSyntaxError,
		"⚠️ **Decorator Syntax**: Decorators use `@decorator_name` above function definitions.",
		"⚠️ **Async/Await**: Use `async def function():` with `await` for asynchronous operations.",
		"⚠️ **Type Hints**: Syntax is `def function(param: str) -> int:` for type annotations.")
	add("python", "advanced", model.FeedbackHint,
		"💡 **Generators**: Use `yield` in functions to create memory-efficient iterators.",
		"💡 **Context Managers**: Use `with statement:` pattern for resource management (files, connections).",
		"💡 **Metaclasses**: Advanced class creation with `class Meta(type):` for framework development.")
	add("python", "advanced", model.FeedbackSuggestion,
		"✨ **Optimization**: Use `numpy` for numerical computing, `pandas` for data analysis.",
		"✨ **Testing**: Write unit tests with `pytest` to validate your code behavior.",
		"✨ **Code Style**: Follow PEP 8 guidelines using tools like `black` for formatting and `pylint` for linting.")

	add("php", "beginner", model.FeedbackSyntaxError,
		"⚠️ **PHP Tags**: Code must be inside `<?php ... ?>` tags to be executed as PHP.",
		"⚠️ **Variable Syntax**: Variables start with `$`: `$name = 'John';` not `name = 'John';`.",
		"⚠️ **Missing Semicolon**: Every statement needs a semicolon: `echo 'Hello';` not `echo 'Hello'`.")
	add("php", "beginner", model.FeedbackHint,
		"💡 **Output**: Use `echo` or `print` to output content: `echo 'Hello World';`.",
		"💡 **Variables**: Store values with `$variable = value;` and use snake_case naming.",
		"💡 **Strings**: Use single quotes `'text'` for literals or double quotes `\"Hello $name\"` for interpolation.")
	add("php", "beginner", model.FeedbackSuggestion,
		"✨ **Isset Check**: Always check if variables exist: `if (isset($_POST['field'])) { }` before using them.",
		"✨ **Array Access**: Create arrays with `$arr = [1, 2, 3];` and access with `$arr[0]`.",
		"✨ **Comments**: Use `//` for single line comments or `/* */` for multiple lines.")

	add("php", "intermediate", model.FeedbackSyntaxError,
		"⚠️ **Function Definition**: Use `function functionName($param) { return $value; }` with proper syntax.",
		"⚠️ **Class Syntax**: Use `class ClassName { public function method() { } }` with access modifiers.",
		"⚠️ **Object Arrow**: Use `->` for instance methods: `$object->method()` not `$object.method()`.")
	add("php", "intermediate", model.FeedbackHint,
		"💡 **Array Functions**: Use `count()`, `array_push()`, `array_merge()`, `implode()` for array operations.",
		"💡 **String Functions**: Use `strlen()`, `substr()`, `str_replace()`, `strtolower()` for strings.",
		"💡 **Database Query**: Use prepared statements: `$stmt = $pdo->prepare('SELECT * FROM users WHERE id = ?');`")
	add("php", "intermediate", model.FeedbackSuggestion,
		"✨ **Superglobals**: Use `$_GET`, `$_POST`, `$_SESSION` for request/session data access.",
		"✨ **Error Handling**: Use `try-catch` blocks: `try { riskyCode(); } catch (Exception $e) { }`.",
		"✨ **Type Hinting**: Add parameter types: `function add(int $a, int $b): int { return $a + $b; }`.")

	add("php", "advanced", model.FeedbackSyntaxError,
		"⚠️ **Namespace Syntax**: Use `namespace App\\Model;` at the top of files for organization.",
		"⚠️ **Static Method**: Call static methods with `::` not `->`: `ClassName::staticMethod()`.",
		"⚠️ **Trait Definition**: Use `trait TraitName { }` and `use TraitName;` for code reuse.")
	add("php", "advanced", model.FeedbackHint,
		"💡 **MVC Pattern**: Separate Model (database), View (HTML), Controller (logic) into different files.",
		"💡 **Composer**: Use `composer require package/name` to install libraries and manage dependencies.",
		"💡 **Async Operations**: Use libraries like `guzzle` for async HTTP requests and process management.")
	add("php", "advanced", model.FeedbackSuggestion,
		"✨ **Security**: Use password hashing with `password_hash()` and verify with `password_verify()`.",
		"✨ **Design Patterns**: Implement Singleton, Factory, Observer patterns for scalable architecture.",
		"✨ **Testing**: Write unit tests with `PHPUnit` to ensure code quality and prevent regressions.")

	return out
}
