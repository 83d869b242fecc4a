package classify

// Bundled module-name tables. Only the first dotted segment of a specifier is
// ever looked up, so dotted entries are not needed here.
//
// The tables are necessarily incomplete: a third-party package missing from
// thirdPartyModules is treated as a project module and shows up as an
// unresolved import. Extend them through the classifier section of
// pydeps.yaml rather than by probing the environment.

var stdlibModules = []string{
	"__future__", "_thread", "abc", "aifc", "argparse", "array", "ast", "asynchat",
	"asyncio", "asyncore", "atexit", "audioop", "base64", "bdb", "binascii", "bisect",
	"builtins", "bz2", "cProfile", "calendar", "cgi", "cgitb", "chunk", "cmath", "cmd",
	"code", "codecs", "codeop", "collections", "colorsys", "compileall", "concurrent",
	"configparser", "contextlib", "contextvars", "copy", "copyreg", "crypt", "csv",
	"ctypes", "curses", "dataclasses", "datetime", "dbm", "decimal", "difflib", "dis",
	"distutils", "doctest", "email", "encodings", "ensurepip", "enum", "errno",
	"faulthandler", "fcntl", "filecmp", "fileinput", "fnmatch", "fractions", "ftplib",
	"functools", "gc", "getopt", "getpass", "gettext", "glob", "graphlib", "grp",
	"gzip", "hashlib", "heapq", "hmac", "html", "http", "imaplib", "imghdr", "imp",
	"importlib", "inspect", "io", "ipaddress", "itertools", "json", "keyword",
	"lib2to3", "linecache", "locale", "logging", "lzma", "mailbox", "mailcap",
	"marshal", "math", "mimetypes", "mmap", "modulefinder", "msvcrt", "multiprocessing",
	"netrc", "nntplib", "ntpath", "numbers", "opcode", "operator", "optparse", "os",
	"pathlib", "pdb", "pickle", "pickletools", "pipes", "pkgutil", "platform",
	"plistlib", "poplib", "posix", "posixpath", "pprint", "profile", "pstats", "pty",
	"pwd", "py_compile", "pyclbr", "pydoc", "queue", "quopri", "random", "re",
	"readline", "reprlib", "resource", "rlcompleter", "runpy", "sched", "secrets",
	"select", "selectors", "shelve", "shlex", "shutil", "signal", "site", "smtpd",
	"smtplib", "sndhdr", "socket", "socketserver", "spwd", "sqlite3", "sre_compile",
	"sre_constants", "sre_parse", "ssl", "stat", "statistics", "string", "stringprep",
	"struct", "subprocess", "sunau", "symbol", "symtable", "sys", "sysconfig",
	"syslog", "tabnanny", "tarfile", "telnetlib", "tempfile", "termios", "textwrap",
	"this", "threading", "time", "timeit", "tkinter", "token", "tokenize", "tomllib",
	"trace", "traceback", "tracemalloc", "tty", "turtle", "types", "typing",
	"unicodedata", "unittest", "urllib", "uu", "uuid", "venv", "warnings", "wave",
	"weakref", "webbrowser", "winreg", "winsound", "wsgiref", "xdrlib", "xml",
	"xmlrpc", "zipapp", "zipfile", "zipimport", "zlib", "zoneinfo",
}

var thirdPartyModules = []string{
	"aiohttp", "alembic", "allennlp", "altair", "ansible", "ariadne", "arviz",
	"astroml", "astropy", "astroquery", "authlib", "avro", "awscli", "ax", "azure",
	"basemap", "bayespy", "bcrypt", "beautifulsoup4", "black", "bokeh", "boto",
	"boto3", "botocore", "botorch", "bs4", "caffe", "cartopy", "catboost", "cbor2",
	"celery", "cerberus", "chameleon", "chef", "ckan", "click", "clipboard",
	"cloudformation", "comet_ml", "corner", "coverage", "cryptography", "cudf",
	"cugraph", "cuml", "cupy", "cuspatial", "cv2", "cx_Freeze", "cx_Oracle", "cython",
	"dask", "datatable", "django", "docker", "docx", "dotenv", "edward", "emcee",
	"fabric", "factory_boy", "fairseq", "faker", "fastapi", "fastavro", "fbprophet",
	"ffmpeg", "fiona", "firebase", "firebase_admin", "flake8", "flask", "folium",
	"ftputil", "gdal", "geocoder", "geopandas", "geopy", "gensim", "getdist",
	"ggplot", "gino", "gmpy2", "google", "gpytorch", "graphene", "graphql", "grpc",
	"gunicorn", "h2o", "helm", "horovod", "huggingface", "hyperopt", "igraph",
	"imageio", "invoke", "isort", "jax", "jaxlib", "jinja2", "jsonschema", "jwt",
	"keras", "kivy", "kubernetes", "libcloud", "librosa", "lifelines", "lightgbm",
	"loguru", "lxml", "mako", "marshmallow", "matplotlib", "mechanize", "mlflow",
	"mock", "modin", "moviepy", "mpmath", "msgpack", "mxnet", "mypy", "neptune",
	"networkx", "nevergrad", "nltk", "nose", "numba", "numpy", "numpyro", "oauth2",
	"oauthlib", "odoo", "opencv", "openpyxl", "openshift", "optuna", "orjson", "osmnx",
	"pandas", "paddlepaddle", "paramiko", "passlib", "pdfkit", "peewee", "petastorm",
	"pgmpy", "piccolo", "pillow", "pip", "pkg_resources", "plone", "plotly", "polars",
	"polyglot", "pomegranate", "pony", "protobuf", "psycopg2", "pulumi", "puppet",
	"py2exe", "pyarrow", "pyaudio", "pyautogui", "pycairo", "pycrypto", "pycryptodome", "pydantic",
	"pydot", "pydub", "pyftpdlib", "pygame", "pyglet", "pygraphviz", "pygtk",
	"pyinotify", "pyinstaller", "pylint", "pymc", "pymc3", "pymongo", "pymysql",
	"pynput", "pyodbc", "pyperclip", "pyproj", "pypy", "pyqt5", "pyramid", "pyro", "pysal",
	"pysftp", "pyside2", "pysimplesoap", "pyspark", "pystan", "pytest", "pywin32",
	"pyyaml", "raven", "rapidjson", "rasterio", "ray", "redis", "reportlab", "requests",
	"reverse_geocoder", "rich", "sacred", "sage", "salt", "scipy", "scrapy", "seaborn",
	"selenium", "sentencepiece", "sentry_sdk", "setuptools", "shapely", "simpleaudio",
	"simplejson", "six", "skopt", "sklearn", "soaplib", "sounddevice", "spacy",
	"splinter", "spyne", "sqlalchemy", "stanfordnlp", "statsmodels", "strawberry",
	"structlog", "sunpy", "suds", "sympy", "tensorboard", "tensorflow",
	"tensorflow_probability", "terraform", "textblob", "theano", "thrift", "tokenizers",
	"toml", "torch", "tornado", "tortoise", "tqdm", "transformers", "troposphere",
	"twisted", "typer", "typing_extensions", "ujson", "uvicorn", "vaex", "virtualenv",
	"voluptuous", "wagtail", "waitress", "wandb", "watchdog", "werkzeug", "wheel",
	"win32api", "win32con", "win32gui", "win32process", "win32service", "wordcloud",
	"wxpython", "xarray", "xgboost", "xlrd", "xlsxwriter", "xlwt", "yaml", "zeep",
	"zhusuan", "zope",
}
