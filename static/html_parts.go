package static

// Куски HTML страницы: форма, график, логи
var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Геодезический купол</title>
		<style>
			body {
				background-color: #1F1F1F; /* Темный фон для всей страницы */
				color: #d3d3d3; /* Светло-серый текст */
				font-family: Consolas, monospace;
				overflow: hidden; /* Запретить прокрутку */
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575; /* Темная граница для правого контейнера */
				overflow-y: auto; /* Вертикальная прокрутка для логов */
				overflow-x: auto; /* Вертикальная прокрутка для логов */
				background-color: #1e1e1e; /* Темный фон для контейнера логов */
			}

			#logs {
				white-space: pre-wrap; /* Сохраняем пробелы и переносим строки */
				word-wrap: break-word; /* Перенос длинных слов */
				color: #d3d3d3; /* Цвет текста в логах — светло-серый */
				font-family: Consolas, monospace; /* Моноширинный шрифт для логов */
			}

			#chart-container {
				width: 100%;
				height: 400px;
			}

			.error {
				color: #ff6b6b; /* Ошибки валидации */
				white-space: pre-wrap;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b; /* Темный фон для полей ввода */
				color: #d3d3d3; /* Светло-серый текст для полей */
				border: 1px solid #444; /* Темная граница */
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label {
				color: #d3d3d3; /* Светло-серый цвет для текста меток */
			}

			h1 {
				color: #d3d3d3; /* Цвет заголовка светло-серый */
			}

			input[type="submit"]:hover {
				background-color: #444; /* Немного светлее при наведении */
				cursor: pointer;
			}

			/* Добавление стилей для темной темы */
			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444; /* Цвет ползунка */
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b; /* Цвет области прокрутки */
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Параметры геодезического купола</h1>
                <form id="dome-form" method="POST">
                    <label>Многогранник:</label><br>
                    <input type="radio" id="poly-4" name="poly" value="4" checked>
                    <label for="poly-4">Tétraèdre</label><br>
                    <input type="radio" id="poly-8" name="poly" value="8">
                    <label for="poly-8">Octaèdre</label><br>
                    <input type="radio" id="poly-20" name="poly" value="20">
                    <label for="poly-20">Icosaèdre</label><br><br>
                    <label for="freq">Частота:</label>
                    <input type="number" id="freq" name="freq" value="1" min="1" max="16"><br><br>
                    <input type="radio" id="class-1" name="class" value="1" checked>
                    <label for="class-1">Класс 1</label>
                    <input type="radio" id="class-2" name="class" value="2">
                    <label for="class-2">Класс 2</label><br><br>
                    <input type="checkbox" id="apex" name="apex" value="true" checked>
                    <label for="apex">Вершина в полюсе</label><br><br>
                    <input type="submit" value="Построить">
                </form>
    `

	// Part2 закрывает форму и открывает панель логов
	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('dome-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                // Отправка данных формы
                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text(); // HTML с обновленным куполом и логами
                })
                .then(html => {
                    document.open(); // Очищаем текущую страницу
                    document.write(html); // Записываем обновленный HTML
                    document.close(); // Закрываем поток
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
