package stubapi

// fixtureUsers mirrors the shape of the public demo API's user records.
const fixtureUsers = `[
  {"id":1,"firstName":"Emily","lastName":"Johnson","maidenName":"Smith","age":28,"gender":"female",
   "email":"emily.johnson@x.dummyjson.com","phone":"+81 965-431-3024","username":"emilys","password":"emilyspass",
   "birthDate":"1996-5-30","image":"https://dummyjson.com/icon/emilys/128",
   "hair":{"color":"Brown","type":"Curly"},
   "address":{"address":"626 Main Street","city":"Phoenix","state":"Mississippi","stateCode":"MS","postalCode":"29112","country":"United States"},
   "university":"University of Wisconsin--Madison",
   "company":{"department":"Engineering","name":"Dooley, Kozey and Cronin","title":"Sales Manager"}},
  {"id":2,"firstName":"Michael","lastName":"Williams","maidenName":"","age":35,"gender":"male",
   "email":"michael.williams@x.dummyjson.com","phone":"+49 258-627-6644","username":"michaelw","password":"michaelwpass",
   "birthDate":"1989-8-10","image":"https://dummyjson.com/icon/michaelw/128",
   "hair":{"color":"Green","type":"Straight"},
   "address":{"address":"385 Fifth Street","city":"Houston","state":"Alabama","stateCode":"AL","postalCode":"38807","country":"United States"},
   "university":"Ohio State University",
   "company":{"department":"Support","name":"Spinka - Dickinson","title":"Support Specialist"}},
  {"id":3,"firstName":"Sophia","lastName":"Brown","maidenName":"","age":42,"gender":"female",
   "email":"sophia.brown@x.dummyjson.com","phone":"+81 210-652-2785","username":"sophiab","password":"sophiabpass",
   "birthDate":"1982-11-6","image":"https://dummyjson.com/icon/sophiab/128",
   "hair":{"color":"White","type":"Wavy"},
   "address":{"address":"1642 Ninth Street","city":"Washington","state":"Alabama","stateCode":"AL","postalCode":"32822","country":"United States"},
   "university":"Pepperdine University",
   "company":{"department":"Research and Development","name":"Schiller - Zieme","title":"Accountant"}},
  {"id":4,"firstName":"Joanna","lastName":"Lima","maidenName":"","age":30,"gender":"female",
   "email":"joanna.lima@x.dummyjson.com","phone":"+51 1 555-0199","username":"joannal","password":"joannalpass",
   "birthDate":"1994-2-14","image":"https://dummyjson.com/icon/joannal/128",
   "hair":{"color":"Black","type":"Straight"},
   "address":{"address":"12 Avenida Arequipa","city":"Lima","state":"Lima","stateCode":"LIM","postalCode":"15046","country":"Peru"},
   "university":"Pontifical Catholic University of Peru",
   "company":{"department":"Marketing","name":"Andes Digital","title":"Analyst"}}
]`
